// service/patient_service_test.go
package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianhealth/clinicgate/audit"
	"github.com/meridianhealth/clinicgate/config"
	"github.com/meridianhealth/clinicgate/dao"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/service"
)

func newPatientService(t *testing.T) (service.IPatientService, audit.Service) {
	t.Helper()
	require.NoError(t, config.InitConfig())
	logger.InitLogger("../logging")

	auditService := audit.NewService(audit.NewMemoryRepository(nil))
	patientDAO := dao.NewPatientDAO(
		dao.SeedSensitivePatients(),
		dao.SeedAppointments(),
		dao.SeedVisits(),
		dao.SeedDiagnoses(),
		dao.SeedMedications(),
	)
	return service.NewPatientService(patientDAO, auditService), auditService
}

func TestGetMedicalRecordAuditsAccess(t *testing.T) {
	patientService, auditService := newPatientService(t)
	ctx := context.Background()

	record, err := patientService.GetMedicalRecord(ctx, "p002", "doctor@secure.med", "10.0.5.25")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", record.Patient.Name)

	logs, err := auditService.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, audit.ActionPatientRecordView, logs[0].Action)
	assert.Equal(t, "doctor@secure.med", logs[0].User)
	assert.Contains(t, logs[0].Details, "p002")
}

func TestListSensitivePatients(t *testing.T) {
	patientService, _ := newPatientService(t)
	ctx := context.Background()

	records, err := patientService.ListSensitivePatients(ctx, "")
	require.NoError(t, err)
	assert.Len(t, records, 100)

	records, err = patientService.ListSensitivePatients(ctx, "jane")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "XXX-XX-5678", records[0].SSN)
}
