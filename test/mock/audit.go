// test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/meridianhealth/clinicgate/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, log audit.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) List(ctx context.Context) ([]audit.AuditLog, error) {
	args := m.Called(ctx)
	return args.Get(0).([]audit.AuditLog), args.Error(1)
}
