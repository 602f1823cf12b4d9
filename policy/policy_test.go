// policy/policy_test.go
package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/policy"
)

func TestIsAllowed(t *testing.T) {
	admin := &model.User{ID: "1", Role: model.RoleAdmin}
	nurse := &model.User{ID: "4", Role: model.RoleNurse}

	t.Run("NilUserDenied", func(t *testing.T) {
		assert.False(t, policy.IsAllowed(nil, []model.Role{model.RoleAdmin}))
	})

	t.Run("NilUserDeniedEvenWithEmptyRoles", func(t *testing.T) {
		assert.False(t, policy.IsAllowed(nil, nil))
	})

	t.Run("EmptyRoleSetAdmitsAnyUser", func(t *testing.T) {
		assert.True(t, policy.IsAllowed(admin, nil))
		assert.True(t, policy.IsAllowed(nurse, []model.Role{}))
	})

	t.Run("MemberAllowed", func(t *testing.T) {
		assert.True(t, policy.IsAllowed(nurse, []model.Role{model.RoleDoctor, model.RoleNurse}))
	})

	t.Run("NonMemberDenied", func(t *testing.T) {
		assert.False(t, policy.IsAllowed(nurse, []model.Role{model.RoleAdmin}))
		assert.False(t, policy.IsAllowed(admin, []model.Role{model.RoleDoctor, model.RoleNurse}))
	})
}
