// controller/controllers.go
package controller

import (
	"github.com/meridianhealth/clinicgate/audit"
	"github.com/meridianhealth/clinicgate/service"
)

type Controllers struct {
	Auth      *AuthController
	User      *UserController
	Patient   *PatientController
	Audit     *AuditController
	Security  *SecurityController
	Analytics *AnalyticsController
}

func InitializeControllers(services *service.Services, auditService audit.Service) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(services.Auth),
		User:      NewUserController(services.User),
		Patient:   NewPatientController(services.Patient),
		Audit:     NewAuditController(auditService),
		Security:  NewSecurityController(services.Security),
		Analytics: NewAnalyticsController(services.Analytics),
	}
}
