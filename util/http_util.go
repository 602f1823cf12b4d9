// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
)

// ContextUserKey is where the auth middleware stores the authenticated user.
const ContextUserKey = "currentUser"

// ContextSessionKey is where the auth middleware stores the session id.
const ContextSessionKey = "sessionID"

func RespondWithError(c *gin.Context, code int, message string, err error) {
	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method))
	c.JSON(code, gin.H{"error": message})
}

// GetCurrentUser returns the authenticated user placed on the context by the
// auth middleware.
func GetCurrentUser(c *gin.Context) (*model.User, error) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, clinic_errors.ErrUnauthorized
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil, clinic_errors.ErrUnauthorized
	}
	return user, nil
}

// GetSessionID returns the session id placed on the context by the auth
// middleware.
func GetSessionID(c *gin.Context) (string, error) {
	value, exists := c.Get(ContextSessionKey)
	if !exists {
		return "", clinic_errors.ErrUnauthorized
	}
	id, ok := value.(string)
	if !ok || id == "" {
		return "", clinic_errors.ErrUnauthorized
	}
	return id, nil
}
