// service/user_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/clinicgate/audit"
	"github.com/meridianhealth/clinicgate/config"
	"github.com/meridianhealth/clinicgate/dao"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/service"
	"github.com/meridianhealth/clinicgate/util"
)

func newUserService(t *testing.T) service.IUserService {
	t.Helper()
	require.NoError(t, config.InitConfig())
	logger.InitLogger("../logging")

	auditService := audit.NewService(audit.NewMemoryRepository(nil))
	userDAO := dao.NewUserDAO(dao.SeedUsers(), auditService)
	return service.NewUserService(
		userDAO,
		util.NewValidationUtil(),
		util.NewNotificationService(),
		util.NewEventBus(),
	)
}

func TestListUsersExcludesAdmins(t *testing.T) {
	userService := newUserService(t)

	users, err := userService.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 9)
	for _, u := range users {
		assert.NotEqual(t, model.RoleAdmin, u.Role)
	}
}

func TestCreateUserValidation(t *testing.T) {
	userService := newUserService(t)
	ctx := context.Background()

	t.Run("ValidRequest", func(t *testing.T) {
		user, err := userService.CreateUser(ctx, model.CreateUserRequest{
			Name:  "New Analyst",
			Email: "analyst.new@secure.med",
			Role:  model.RoleAnalyst,
		}, "admin@secure.med", "192.168.1.10")
		require.NoError(t, err)
		assert.Equal(t, "u11", user.ID)
	})

	t.Run("RejectsUnknownRole", func(t *testing.T) {
		_, err := userService.CreateUser(ctx, model.CreateUserRequest{
			Name:  "Bad Role",
			Email: "bad@secure.med",
			Role:  "Janitor",
		}, "admin@secure.med", "192.168.1.10")
		assert.Error(t, err)
	})

	t.Run("RejectsMalformedEmail", func(t *testing.T) {
		_, err := userService.CreateUser(ctx, model.CreateUserRequest{
			Name:  "Bad Email",
			Email: "not-an-address",
			Role:  model.RoleNurse,
		}, "admin@secure.med", "192.168.1.10")
		assert.Error(t, err)
	})
}
