// dao/vulnerability_dao.go
package dao

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/meridianhealth/clinicgate/audit"
	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
)

// VulnerabilityDAO owns the findings register. Status is the only mutable
// field anywhere in the data layer and it only moves forward to Patched.
type VulnerabilityDAO struct {
	mu              sync.RWMutex
	vulnerabilities []model.Vulnerability
	AuditService    audit.Service
}

func NewVulnerabilityDAO(seed []model.Vulnerability, auditService audit.Service) *VulnerabilityDAO {
	vulnerabilities := make([]model.Vulnerability, len(seed))
	copy(vulnerabilities, seed)
	return &VulnerabilityDAO{vulnerabilities: vulnerabilities, AuditService: auditService}
}

func (dao *VulnerabilityDAO) List(ctx context.Context) ([]model.Vulnerability, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()

	vulnerabilities := make([]model.Vulnerability, len(dao.vulnerabilities))
	copy(vulnerabilities, dao.vulnerabilities)
	return vulnerabilities, nil
}

// Remediate sets the finding's status to Patched and returns the updated
// record. Calling it on an already-Patched finding is a no-op returning the
// record unchanged with changed=false; cost and remediation text are never
// touched.
func (dao *VulnerabilityDAO) Remediate(ctx context.Context, vulnerabilityID, actor, ip string) (model.Vulnerability, bool, error) {
	start := time.Now()
	dao.mu.Lock()

	var found *model.Vulnerability
	for i := range dao.vulnerabilities {
		if dao.vulnerabilities[i].ID == vulnerabilityID {
			found = &dao.vulnerabilities[i]
			break
		}
	}
	if found == nil {
		dao.mu.Unlock()
		return model.Vulnerability{}, false, clinic_errors.ErrVulnerabilityNotFound
	}

	if found.Status == model.StatusPatched {
		result := *found
		dao.mu.Unlock()
		return result, false, nil
	}

	found.Status = model.StatusPatched
	result := *found
	dao.mu.Unlock()

	logger.Info("Vulnerability remediated",
		zap.String("vulnerabilityID", result.ID),
		zap.String("cveID", result.CVEID),
		zap.Duration("duration", time.Since(start)))

	// Audit trail
	auditLog := audit.AuditLog{
		Timestamp: time.Now(),
		User:      actor,
		Action:    audit.ActionVulnerabilityRemediate,
		IPAddress: ip,
		Details:   fmt.Sprintf("Remediated vulnerability %s (%s).", result.ID, result.CVEID),
	}
	if err := dao.AuditService.Record(ctx, auditLog); err != nil {
		logger.Warn("Failed to record audit entry for remediation",
			zap.Error(err),
			zap.String("vulnerabilityID", result.ID))
	}

	return result, true, nil
}
