// controller/audit_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/meridianhealth/clinicgate/audit"
	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	"github.com/meridianhealth/clinicgate/util"
	helper_util "github.com/meridianhealth/clinicgate/util/helper"
)

type AuditController struct {
	auditService audit.Service
}

func NewAuditController(auditService audit.Service) *AuditController {
	return &AuditController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuditController) RegisterRoutes(r *gin.RouterGroup) {
	logs := r.Group("/audit")
	{
		logs.GET("/logs", ac.ListLogs)
	}
}

// ListLogs endpoint. On top of the Admin role the caller must present the
// configured access code; the comparison is verbatim, mirroring the mock
// nature of the rest of the authentication surface.
func (ac *AuditController) ListLogs(c *gin.Context) {
	if c.GetHeader("X-Audit-Access-Code") != viper.GetString("auth.auditAccessCode") {
		util.RespondWithError(c, http.StatusForbidden, "Invalid audit access code", clinic_errors.ErrForbidden)
		return
	}

	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	logs, err := ac.auditService.List(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list audit logs", err)
		return
	}

	if offset >= len(logs) {
		c.JSON(http.StatusOK, []audit.AuditLog{})
		return
	}
	end := offset + limit
	if end > len(logs) {
		end = len(logs)
	}

	c.JSON(http.StatusOK, logs[offset:end])
}
