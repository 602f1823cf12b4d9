// service/security_service_test.go
package service_test

import (
	"context"
	"testing"
	"time"

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

func newSecurityService(t *testing.T) (service.ISecurityService, audit.Service) {
	t.Helper()
	require.NoError(t, config.InitConfig())
	logger.InitLogger("../logging")

	auditService := audit.NewService(audit.NewMemoryRepository(audit.SeedLogs()))
	vulnerabilityDAO := dao.NewVulnerabilityDAO(dao.SeedVulnerabilities(), auditService)
	securityService := service.NewSecurityService(
		vulnerabilityDAO,
		auditService,
		util.NewNotificationService(),
		util.NewEventBus(),
	)
	return securityService, auditService
}

func TestSystemHealth(t *testing.T) {
	securityService, auditService := newSecurityService(t)
	ctx := context.Background()

	t.Run("BaselineHasNoAuthenticationFinding", func(t *testing.T) {
		// The carried-over trail holds exactly two failed logins, below the
		// alerting threshold.
		findings, err := securityService.SystemHealth(ctx)
		require.NoError(t, err)
		require.Len(t, findings, 2)
		assert.Equal(t, "risk002", findings[0].ID)
		assert.Equal(t, model.RiskLow, findings[0].Level)
		assert.Equal(t, "risk003", findings[1].ID)
		assert.Equal(t, model.RiskMedium, findings[1].Level)
	})

	t.Run("ThirdFailedLoginRaisesHighFinding", func(t *testing.T) {
		require.NoError(t, auditService.Record(ctx, audit.AuditLog{
			Timestamp: time.Now(),
			User:      "hacker@evil.com",
			Action:    audit.ActionLoginFailure,
			IPAddress: "198.51.100.9",
			Details:   "Failed login attempt for user admin@secure.med.",
		}))

		findings, err := securityService.SystemHealth(ctx)
		require.NoError(t, err)
		require.Len(t, findings, 3)
		assert.Equal(t, "risk001", findings[0].ID)
		assert.Equal(t, model.RiskHigh, findings[0].Level)
		assert.Equal(t, "Authentication", findings[0].Category)
		assert.Contains(t, findings[0].Description, "3")
		// The alert names the earliest offending source, not the latest.
		assert.Contains(t, findings[0].Description, "203.0.113.50")
	})
}

func TestRemediateThroughService(t *testing.T) {
	securityService, _ := newSecurityService(t)
	ctx := context.Background()

	vulnerability, err := securityService.Remediate(ctx, "v003", "admin@secure.med", "192.168.1.10")
	require.NoError(t, err)
	assert.Equal(t, model.StatusPatched, vulnerability.Status)

	vulnerabilities, err := securityService.ListVulnerabilities(ctx)
	require.NoError(t, err)
	for _, v := range vulnerabilities {
		if v.ID == "v003" {
			assert.Equal(t, model.StatusPatched, v.Status)
		}
	}
}

func TestRemediateEventFiresOnlyOnTransition(t *testing.T) {
	require.NoError(t, config.InitConfig())
	logger.InitLogger("../logging")

	auditService := audit.NewService(audit.NewMemoryRepository(nil))
	vulnerabilityDAO := dao.NewVulnerabilityDAO(dao.SeedVulnerabilities(), auditService)
	eventBus := util.NewEventBus()

	events := make(chan model.Vulnerability, 2)
	eventBus.Subscribe(util.EventVulnerabilityRemediated, func(ctx context.Context, event util.Event) error {
		events <- event.Payload.(model.Vulnerability)
		return nil
	})

	securityService := service.NewSecurityService(
		vulnerabilityDAO,
		auditService,
		util.NewNotificationService(),
		eventBus,
	)
	ctx := context.Background()

	_, err := securityService.Remediate(ctx, "v005", "admin@secure.med", "192.168.1.10")
	require.NoError(t, err)

	select {
	case v := <-events:
		assert.Equal(t, "v005", v.ID)
	case <-time.After(time.Second):
		t.Fatal("no event for the status transition")
	}

	// The repeat call is an idempotent no-op and must stay silent.
	_, err = securityService.Remediate(ctx, "v005", "admin@secure.med", "192.168.1.10")
	require.NoError(t, err)

	select {
	case v := <-events:
		t.Fatalf("unexpected event for no-op remediation of %s", v.ID)
	case <-time.After(200 * time.Millisecond):
	}
}
