// middleware/auth.go
package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/policy"
	"github.com/meridianhealth/clinicgate/service"
	"github.com/meridianhealth/clinicgate/util"
)

// SessionAuth resolves the bearer token to an authenticated session and
// places the identity on the request context. Requests without a valid
// session are rejected with 401; role checks happen later in RequireRoles.
func SessionAuth(authService service.IAuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		sessionID, err := parseSessionToken(tokenString)
		if err != nil {
			logger.Warn("Rejected bearer token", zap.Error(err), zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		user, err := authService.CurrentUser(c, sessionID)
		if err != nil {
			logger.Warn("No session for presented token",
				zap.String("sessionID", sessionID),
				zap.String("ip", c.ClientIP()))
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(util.ContextUserKey, user)
		c.Set(util.ContextSessionKey, sessionID)
		c.Next()
	}
}

// RequireRoles gates a route group on role-set membership. An empty role set
// admits any authenticated user.
func RequireRoles(roles ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := util.GetCurrentUser(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		if !policy.IsAllowed(user, roles) {
			logger.Warn("Role check failed",
				zap.String("userID", user.ID),
				zap.String("role", string(user.Role)),
				zap.String("path", c.Request.URL.Path))
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func parseSessionToken(tokenString string) (string, error) {
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString("auth.jwtSecret")), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Id == "" {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Id, nil
}
