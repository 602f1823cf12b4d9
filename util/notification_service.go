// util/notification_service.go

package util

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
)

type NotificationService struct {
	// In a deployment this would carry a message queue or mail client
}

func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

func (n *NotificationService) NotifyUserChange(ctx context.Context, changeType string, user model.User) error {
	switch changeType {
	case "created":
		logger.Info("NOTIFICATION: New user created",
			zap.String("userID", user.ID),
			zap.String("email", user.Email),
			zap.String("role", string(user.Role)))
	default:
		return fmt.Errorf("unknown change type: %s", changeType)
	}
	return nil
}

func (n *NotificationService) NotifyLogin(ctx context.Context, user model.User) error {
	logger.Info("NOTIFICATION: User logged in",
		zap.String("userID", user.ID),
		zap.String("role", string(user.Role)))
	return nil
}

func (n *NotificationService) NotifySecurityEvent(ctx context.Context, vulnerability model.Vulnerability) error {
	logger.Info("NOTIFICATION: Vulnerability remediated",
		zap.String("vulnerabilityID", vulnerability.ID),
		zap.String("cveID", vulnerability.CVEID),
		zap.String("severity", string(vulnerability.Severity)))
	return nil
}

func (n *NotificationService) SendPasswordReset(ctx context.Context, email string) error {
	// Mock operation: no mail is sent, the reset is only logged.
	logger.Info("NOTIFICATION: Password reset requested",
		zap.String("email", email))
	return nil
}
