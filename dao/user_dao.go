// dao/user_dao.go
package dao

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/meridianhealth/clinicgate/audit"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
)

// UserDAO owns the staff directory. The directory is seeded at startup and
// only grows; users are never updated or deleted.
type UserDAO struct {
	mu           sync.RWMutex
	users        []model.User
	AuditService audit.Service
}

func NewUserDAO(seed []model.User, auditService audit.Service) *UserDAO {
	users := make([]model.User, len(seed))
	copy(users, seed)
	return &UserDAO{users: users, AuditService: auditService}
}

// List returns the directory in seeded order. When excludeRole is non-empty,
// users with that role are omitted.
func (dao *UserDAO) List(ctx context.Context, excludeRole model.Role) ([]model.User, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()

	users := make([]model.User, 0, len(dao.users))
	for _, u := range dao.users {
		if excludeRole != "" && u.Role == excludeRole {
			continue
		}
		users = append(users, u)
	}
	return users, nil
}

// FindByEmail returns the user with the given email, or nil when unknown.
func (dao *UserDAO) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()

	for _, u := range dao.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

// Create appends a user with the next sequential id. Email uniqueness is
// deliberately not enforced; the directory preserves the legacy behavior of
// accepting duplicates.
func (dao *UserDAO) Create(ctx context.Context, name, email string, role model.Role, actor, ip string) (model.User, error) {
	start := time.Now()
	dao.mu.Lock()
	user := model.User{
		ID:    fmt.Sprintf("u%d", len(dao.users)+1),
		Name:  name,
		Email: email,
		Role:  role,
	}
	dao.users = append(dao.users, user)
	dao.mu.Unlock()

	logger.Info("User created successfully",
		zap.String("userID", user.ID),
		zap.String("email", user.Email),
		zap.Duration("duration", time.Since(start)))

	// Audit trail
	auditLog := audit.AuditLog{
		Timestamp: time.Now(),
		User:      actor,
		Action:    audit.ActionUserCreated,
		IPAddress: ip,
		Details:   fmt.Sprintf("Created user %s.", user.Email),
	}
	if err := dao.AuditService.Record(ctx, auditLog); err != nil {
		logger.Warn("Failed to record audit entry for user creation",
			zap.Error(err),
			zap.String("userID", user.ID))
	}

	return user, nil
}
