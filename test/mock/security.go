// test/mock/security.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/meridianhealth/clinicgate/model"
)

// MockSecurityService is a mock implementation of service.ISecurityService
type MockSecurityService struct {
	mock.Mock
}

func (m *MockSecurityService) ListVulnerabilities(ctx context.Context) ([]model.Vulnerability, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Vulnerability), args.Error(1)
}

func (m *MockSecurityService) Remediate(ctx context.Context, vulnerabilityID, actor, ip string) (*model.Vulnerability, error) {
	args := m.Called(ctx, vulnerabilityID, actor, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Vulnerability), args.Error(1)
}

func (m *MockSecurityService) SystemHealth(ctx context.Context) ([]model.RiskFinding, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.RiskFinding), args.Error(1)
}
