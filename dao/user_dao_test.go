// dao/user_dao_test.go
package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/clinicgate/audit"
	"github.com/meridianhealth/clinicgate/dao"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
)

func newUserDAO() (*dao.UserDAO, audit.Service) {
	auditService := audit.NewService(audit.NewMemoryRepository(nil))
	return dao.NewUserDAO(dao.SeedUsers(), auditService), auditService
}

func TestList(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	userDAO, _ := newUserDAO()
	ctx := context.Background()

	t.Run("NoExclusionReturnsAllInSeededOrder", func(t *testing.T) {
		users, err := userDAO.List(ctx, "")
		require.NoError(t, err)
		require.Len(t, users, 10)
		assert.Equal(t, "admin@secure.med", users[0].Email)
	})

	t.Run("ExcludeAdminOmitsPrivilegedIdentities", func(t *testing.T) {
		users, err := userDAO.List(ctx, model.RoleAdmin)
		require.NoError(t, err)
		require.Len(t, users, 9)
		for _, u := range users {
			assert.NotEqual(t, model.RoleAdmin, u.Role)
		}
	})
}

func TestFindByEmail(t *testing.T) {
	userDAO, _ := newUserDAO()
	ctx := context.Background()

	user, err := userDAO.FindByEmail(ctx, "doctor@secure.med")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, model.RoleDoctor, user.Role)

	user, err = userDAO.FindByEmail(ctx, "nobody@secure.med")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestCreate(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	userDAO, auditService := newUserDAO()
	ctx := context.Background()

	t.Run("AssignsSequentialIDs", func(t *testing.T) {
		user, err := userDAO.Create(ctx, "New Nurse", "nurse.new@secure.med", model.RoleNurse, "admin@secure.med", "192.168.1.10")
		require.NoError(t, err)
		assert.Equal(t, "u11", user.ID)

		user, err = userDAO.Create(ctx, "Another Nurse", "nurse.other@secure.med", model.RoleNurse, "admin@secure.med", "192.168.1.10")
		require.NoError(t, err)
		assert.Equal(t, "u12", user.ID)
	})

	t.Run("RecordsAuditEntry", func(t *testing.T) {
		logs, err := auditService.List(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, logs)
		assert.Equal(t, audit.ActionUserCreated, logs[0].Action)
		assert.Contains(t, logs[0].Details, "nurse.other@secure.med")
	})
}

// The directory deliberately accepts duplicate emails; the legacy system
// never enforced uniqueness and callers depend on creation always
// succeeding.
func TestCreate_AllowsDuplicateEmail(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	userDAO, _ := newUserDAO()
	ctx := context.Background()

	first, err := userDAO.Create(ctx, "Dup One", "dup@secure.med", model.RoleAnalyst, "admin@secure.med", "192.168.1.10")
	require.NoError(t, err)

	second, err := userDAO.Create(ctx, "Dup Two", "dup@secure.med", model.RoleAnalyst, "admin@secure.med", "192.168.1.10")
	require.NoError(t, err)

	assert.Equal(t, first.Email, second.Email)
	assert.NotEqual(t, first.ID, second.ID)
}
