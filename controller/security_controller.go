// controller/security_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	"github.com/meridianhealth/clinicgate/service"
	"github.com/meridianhealth/clinicgate/util"
)

type SecurityController struct {
	securityService service.ISecurityService
}

func NewSecurityController(securityService service.ISecurityService) *SecurityController {
	return &SecurityController{
		securityService: securityService,
	}
}

// RegisterRoutes registers the API routes
func (sc *SecurityController) RegisterRoutes(r *gin.RouterGroup) {
	vulnerabilities := r.Group("/vulnerabilities")
	{
		vulnerabilities.GET("", sc.ListVulnerabilities)
		vulnerabilities.POST("/:id/remediate", sc.Remediate)
	}
	system := r.Group("/system")
	{
		system.GET("/health", sc.SystemHealth)
	}
}

// ListVulnerabilities endpoint
func (sc *SecurityController) ListVulnerabilities(c *gin.Context) {
	vulnerabilities, err := sc.securityService.ListVulnerabilities(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list vulnerabilities", err)
		return
	}

	c.JSON(http.StatusOK, vulnerabilities)
}

// Remediate endpoint
func (sc *SecurityController) Remediate(c *gin.Context) {
	vulnerabilityID := c.Param("id")

	actor, err := util.GetCurrentUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	vulnerability, err := sc.securityService.Remediate(c, vulnerabilityID, actor.Email, c.ClientIP())
	if err != nil {
		switch err {
		case clinic_errors.ErrVulnerabilityNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Vulnerability not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to remediate vulnerability", clinic_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, vulnerability)
}

// SystemHealth endpoint
func (sc *SecurityController) SystemHealth(c *gin.Context) {
	findings, err := sc.securityService.SystemHealth(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to assess system health", err)
		return
	}

	c.JSON(http.StatusOK, findings)
}
