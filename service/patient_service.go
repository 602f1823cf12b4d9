// service/patient_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/meridianhealth/clinicgate/audit"
	"github.com/meridianhealth/clinicgate/dao"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
)

// IPatientService defines the interface for patient data operations
type IPatientService interface {
	SearchPatients(ctx context.Context, query string) ([]model.Patient, error)
	GetMedicalRecord(ctx context.Context, patientID, actor, ip string) (*model.MedicalRecord, error)
	ListSensitivePatients(ctx context.Context, query string) ([]model.SensitivePatientRecord, error)
	AppointmentsFor(ctx context.Context, patientID string) ([]model.Appointment, error)
}

type PatientService struct {
	patientDAO   *dao.PatientDAO
	auditService audit.Service
}

var _ IPatientService = &PatientService{}

func NewPatientService(patientDAO *dao.PatientDAO, auditService audit.Service) *PatientService {
	return &PatientService{
		patientDAO:   patientDAO,
		auditService: auditService,
	}
}

// SearchPatients queries the de-identified collection.
func (s *PatientService) SearchPatients(ctx context.Context, query string) ([]model.Patient, error) {
	return s.patientDAO.Search(ctx, query)
}

// GetMedicalRecord assembles the clinical record and leaves an audit trail
// of the access.
func (s *PatientService) GetMedicalRecord(ctx context.Context, patientID, actor, ip string) (*model.MedicalRecord, error) {
	record, err := s.patientDAO.MedicalRecord(ctx, patientID)
	if err != nil {
		return nil, err
	}

	entry := audit.AuditLog{
		Timestamp: time.Now(),
		User:      actor,
		Action:    audit.ActionPatientRecordView,
		IPAddress: ip,
		Details:   fmt.Sprintf("Viewed record for patient %s.", patientID),
	}
	if err := s.auditService.Record(ctx, entry); err != nil {
		logger.Warn("Failed to record audit entry for record view",
			zap.Error(err),
			zap.String("patientID", patientID))
	}

	return record, nil
}

// ListSensitivePatients returns the legacy records, narrowed by the optional
// query. Policy at the route layer restricts this to Admin.
func (s *PatientService) ListSensitivePatients(ctx context.Context, query string) ([]model.SensitivePatientRecord, error) {
	records, err := s.patientDAO.Sensitive(ctx)
	if err != nil {
		return nil, err
	}
	return dao.FilterSensitive(records, query), nil
}

func (s *PatientService) AppointmentsFor(ctx context.Context, patientID string) ([]model.Appointment, error) {
	return s.patientDAO.AppointmentsFor(ctx, patientID)
}
