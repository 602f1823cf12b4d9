// service/user_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/meridianhealth/clinicgate/dao"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/util"
)

// IUserService defines the interface for directory operations
type IUserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	CreateUser(ctx context.Context, req model.CreateUserRequest, actor, ip string) (*model.User, error)
}

// UserService handles business logic for the staff directory
type UserService struct {
	userDAO         *dao.UserDAO
	validationUtil  *util.ValidationUtil
	notificationSvc *util.NotificationService
	eventBus        *util.EventBus
}

var _ IUserService = &UserService{}

// NewUserService creates a new instance of UserService
func NewUserService(userDAO *dao.UserDAO, validationUtil *util.ValidationUtil, notificationSvc *util.NotificationService, eventBus *util.EventBus) *UserService {
	service := &UserService{
		userDAO:         userDAO,
		validationUtil:  validationUtil,
		notificationSvc: notificationSvc,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe(util.EventUserCreated, service.handleUserCreated)

	return service
}

func (s *UserService) handleUserCreated(ctx context.Context, event util.Event) error {
	user := event.Payload.(model.User)
	logger.Info("User created event received", zap.String("userID", user.ID))

	if err := s.notificationSvc.NotifyUserChange(ctx, "created", user); err != nil {
		logger.Warn("Failed to send user creation notification", zap.Error(err), zap.String("userID", user.ID))
	}

	return nil
}

// ListUsers returns the directory excluding Admin accounts; the user
// management view never shows privileged identities.
func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.userDAO.List(ctx, model.RoleAdmin)
}

// CreateUser handles the creation of a new directory user
func (s *UserService) CreateUser(ctx context.Context, req model.CreateUserRequest, actor, ip string) (*model.User, error) {
	if err := s.validationUtil.ValidateNewUser(req.Name, req.Email, req.Role); err != nil {
		return nil, fmt.Errorf("invalid user: %w", err)
	}

	user, err := s.userDAO.Create(ctx, req.Name, req.Email, req.Role, actor, ip)
	if err != nil {
		logger.Error("Error creating user", zap.Error(err), zap.String("actor", actor))
		return nil, err
	}

	s.eventBus.Publish(ctx, util.EventUserCreated, user)

	return &user, nil
}
