// service/services.go
package service

import (
	"github.com/meridianhealth/clinicgate/audit"
	"github.com/meridianhealth/clinicgate/dao"
	"github.com/meridianhealth/clinicgate/session"
	"github.com/meridianhealth/clinicgate/util"
)

type Services struct {
	Auth      IAuthService
	User      IUserService
	Patient   IPatientService
	Security  ISecurityService
	Analytics IAnalyticsService
}

func InitializeServices(
	sessions session.Store,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	notificationSvc *util.NotificationService,
	eventBus *util.EventBus,
) (*Services, error) {
	userDAO := dao.NewUserDAO(dao.SeedUsers(), auditService)
	patientDAO := dao.NewPatientDAO(
		dao.SeedSensitivePatients(),
		dao.SeedAppointments(),
		dao.SeedVisits(),
		dao.SeedDiagnoses(),
		dao.SeedMedications(),
	)
	vulnerabilityDAO := dao.NewVulnerabilityDAO(dao.SeedVulnerabilities(), auditService)

	services := &Services{
		Auth:      NewAuthService(userDAO, sessions, auditService, notificationSvc, eventBus),
		User:      NewUserService(userDAO, validationUtil, notificationSvc, eventBus),
		Patient:   NewPatientService(patientDAO, auditService),
		Security:  NewSecurityService(vulnerabilityDAO, auditService, notificationSvc, eventBus),
		Analytics: NewAnalyticsService(patientDAO, validationUtil, cacheService),
	}

	return services, nil
}
