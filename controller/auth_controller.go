// controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	"github.com/meridianhealth/clinicgate/service"
	"github.com/meridianhealth/clinicgate/util"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterPublicRoutes registers the routes reachable without a session.
func (ac *AuthController) RegisterPublicRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", ac.Login)
		auth.POST("/verify", ac.VerifySecondFactor)
		auth.POST("/password-reset/request", ac.RequestPasswordReset)
		auth.POST("/password-reset", ac.ResetPassword)
	}
}

// RegisterProtectedRoutes registers the routes that require a session.
func (ac *AuthController) RegisterProtectedRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", ac.Me)
		auth.POST("/logout", ac.Logout)
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type verifyRequest struct {
	PendingToken string `json:"pending_token" binding:"required"`
	Code         string `json:"code" binding:"required"`
}

type passwordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login data", err)
		return
	}

	result, err := ac.authService.Login(c, req.Email, req.Password, c.ClientIP())
	if err != nil {
		switch err {
		case clinic_errors.ErrInvalidCredentials:
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to log in", clinic_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// VerifySecondFactor endpoint
func (ac *AuthController) VerifySecondFactor(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid verification data", err)
		return
	}

	result, err := ac.authService.VerifySecondFactor(c, req.PendingToken, req.Code, c.ClientIP())
	if err != nil {
		switch err {
		case clinic_errors.ErrInvalidCode:
			util.RespondWithError(c, http.StatusUnauthorized, "Invalid verification code", err)
		case clinic_errors.ErrPendingNotFound:
			util.RespondWithError(c, http.StatusUnauthorized, "No pending login for token", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to verify code", clinic_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me endpoint
func (ac *AuthController) Me(c *gin.Context) {
	user, err := util.GetCurrentUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout endpoint
func (ac *AuthController) Logout(c *gin.Context) {
	sessionID, err := util.GetSessionID(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	if err := ac.authService.Logout(c, sessionID, c.ClientIP()); err != nil {
		switch err {
		case clinic_errors.ErrSessionNotFound:
			util.RespondWithError(c, http.StatusUnauthorized, "Session not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to log out", clinic_errors.ErrInternalServer)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// RequestPasswordReset endpoint
func (ac *AuthController) RequestPasswordReset(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid reset request", err)
		return
	}

	known, err := ac.authService.RequestPasswordReset(c, req.Email)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to request password reset", clinic_errors.ErrInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"email_known": known})
}

// ResetPassword endpoint
func (ac *AuthController) ResetPassword(c *gin.Context) {
	var req passwordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid reset request", err)
		return
	}

	if err := ac.authService.ResetPassword(c, req.Email); err != nil {
		switch err {
		case clinic_errors.ErrUserNotFound:
			util.RespondWithError(c, http.StatusNotFound, "User not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to reset password", clinic_errors.ErrInternalServer)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
