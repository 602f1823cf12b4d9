// dao/vulnerability_dao_test.go
package dao_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/clinicgate/audit"
	"github.com/meridianhealth/clinicgate/dao"
	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
)

func TestRemediate(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	auditService := audit.NewService(audit.NewMemoryRepository(nil))
	vulnerabilityDAO := dao.NewVulnerabilityDAO(dao.SeedVulnerabilities(), auditService)
	ctx := context.Background()

	t.Run("SetsStatusToPatched", func(t *testing.T) {
		result, changed, err := vulnerabilityDAO.Remediate(ctx, "v001", "admin@secure.med", "192.168.1.10")
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, model.StatusPatched, result.Status)
		assert.Equal(t, float64(25000), result.RemediationCost)
		assert.Contains(t, result.Remediation, "Log4j")
	})

	t.Run("IdempotentOnSecondCall", func(t *testing.T) {
		logsBefore, err := auditService.List(ctx)
		require.NoError(t, err)

		result, changed, err := vulnerabilityDAO.Remediate(ctx, "v001", "admin@secure.med", "192.168.1.10")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, model.StatusPatched, result.Status)
		assert.Equal(t, float64(25000), result.RemediationCost)

		// No second audit entry for a no-op.
		logsAfter, err := auditService.List(ctx)
		require.NoError(t, err)
		assert.Len(t, logsAfter, len(logsBefore))
	})

	t.Run("AlreadyPatchedSeedIsNoOp", func(t *testing.T) {
		logsBefore, err := auditService.List(ctx)
		require.NoError(t, err)

		result, changed, err := vulnerabilityDAO.Remediate(ctx, "v002", "admin@secure.med", "192.168.1.10")
		require.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, model.StatusPatched, result.Status)

		logsAfter, err := auditService.List(ctx)
		require.NoError(t, err)
		assert.Len(t, logsAfter, len(logsBefore))
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, _, err := vulnerabilityDAO.Remediate(ctx, "v999", "admin@secure.med", "192.168.1.10")
		assert.ErrorIs(t, err, clinic_errors.ErrVulnerabilityNotFound)
	})
}

func TestListVulnerabilities(t *testing.T) {
	auditService := audit.NewService(audit.NewMemoryRepository(nil))
	vulnerabilityDAO := dao.NewVulnerabilityDAO(dao.SeedVulnerabilities(), auditService)

	vulnerabilities, err := vulnerabilityDAO.List(context.Background())
	require.NoError(t, err)
	require.Len(t, vulnerabilities, 15)
	assert.Equal(t, "v001", vulnerabilities[0].ID)
	assert.Equal(t, model.RiskCritical, vulnerabilities[0].Severity)
}
