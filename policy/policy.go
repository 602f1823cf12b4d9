// policy/policy.go
package policy

import "github.com/meridianhealth/clinicgate/model"

// IsAllowed decides whether user may reach a view guarded by requiredRoles.
// An empty role set admits any authenticated user; a nil user is never
// admitted. Pure function of its inputs, no side effects.
func IsAllowed(user *model.User, requiredRoles []model.Role) bool {
	if user == nil {
		return false
	}
	if len(requiredRoles) == 0 {
		return true
	}
	for _, role := range requiredRoles {
		if user.Role == role {
			return true
		}
	}
	return false
}
