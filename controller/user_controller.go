// controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/service"
	"github.com/meridianhealth/clinicgate/util"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the API routes
func (uc *UserController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.GET("", uc.ListUsers)
		users.POST("", uc.CreateUser)
	}
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.userService.ListUsers(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateUser endpoint
func (uc *UserController) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", clinic_errors.ErrInvalidUserData)
		return
	}

	actor, err := util.GetCurrentUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	user, err := uc.userService.CreateUser(c, req, actor.Email, c.ClientIP())
	if err != nil {
		switch err {
		case clinic_errors.ErrInvalidUserData:
			util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to create user", clinic_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusCreated, user)
}
