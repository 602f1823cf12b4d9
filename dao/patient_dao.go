// dao/patient_dao.go
package dao

import (
	"context"
	"strings"
	"sync"

	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	"github.com/meridianhealth/clinicgate/model"
)

// PatientDAO owns both patient collections: the sensitive legacy records and
// the de-identified view derived from them. The de-identified view is the
// only collection reachable from non-privileged query paths.
type PatientDAO struct {
	mu           sync.RWMutex
	sensitive    []model.SensitivePatientRecord
	deidentified []model.Patient
	appointments []model.Appointment
	visits       map[string][]model.Visit
	diagnoses    map[string][]model.Diagnosis
	medications  map[string][]model.Medication
}

func NewPatientDAO(
	sensitive []model.SensitivePatientRecord,
	appointments []model.Appointment,
	visits map[string][]model.Visit,
	diagnoses map[string][]model.Diagnosis,
	medications map[string][]model.Medication,
) *PatientDAO {
	deidentified := make([]model.Patient, len(sensitive))
	for i, r := range sensitive {
		deidentified[i] = r.Deidentified()
	}
	return &PatientDAO{
		sensitive:    sensitive,
		deidentified: deidentified,
		appointments: appointments,
		visits:       visits,
		diagnoses:    diagnoses,
		medications:  medications,
	}
}

// Search returns de-identified records matching searchText. An empty query
// returns the full collection in seeded order. Otherwise a record matches
// when its name, id, or MRN contains the query case-insensitively, or when
// the patient has an appointment whose date contains the query. Matching is
// substring, not fuzzy.
func (dao *PatientDAO) Search(ctx context.Context, searchText string) ([]model.Patient, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()

	if searchText == "" {
		patients := make([]model.Patient, len(dao.deidentified))
		copy(patients, dao.deidentified)
		return patients, nil
	}

	query := strings.ToLower(searchText)

	matchedByAppointment := make(map[string]bool)
	for _, a := range dao.appointments {
		if strings.Contains(a.Date, query) {
			matchedByAppointment[a.PatientID] = true
		}
	}

	var patients []model.Patient
	for _, p := range dao.deidentified {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.ID), query) ||
			strings.Contains(strings.ToLower(p.MRN), query) ||
			matchedByAppointment[p.ID] {
			patients = append(patients, p)
		}
	}
	return patients, nil
}

// Sensitive returns the full unfiltered legacy collection. Route-level
// policy restricts this to the Admin role.
func (dao *PatientDAO) Sensitive(ctx context.Context) ([]model.SensitivePatientRecord, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()

	records := make([]model.SensitivePatientRecord, len(dao.sensitive))
	copy(records, dao.sensitive)
	return records, nil
}

// FilterSensitive narrows records by name or id substring, case-insensitive.
// Pure helper for callers filtering an already-fetched collection.
func FilterSensitive(records []model.SensitivePatientRecord, searchText string) []model.SensitivePatientRecord {
	if searchText == "" {
		return records
	}
	query := strings.ToLower(searchText)
	var filtered []model.SensitivePatientRecord
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), query) ||
			strings.Contains(strings.ToLower(r.ID), query) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// MedicalRecord assembles the full clinical record for a patient. Missing
// sub-records come back as empty lists, not errors; an unknown patient id is
// ErrPatientNotFound.
func (dao *PatientDAO) MedicalRecord(ctx context.Context, patientID string) (*model.MedicalRecord, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()

	var patient *model.Patient
	for i := range dao.deidentified {
		if dao.deidentified[i].ID == patientID {
			patient = &dao.deidentified[i]
			break
		}
	}
	if patient == nil {
		return nil, clinic_errors.ErrPatientNotFound
	}

	record := &model.MedicalRecord{
		Patient:     *patient,
		Visits:      dao.visits[patientID],
		Diagnoses:   dao.diagnoses[patientID],
		Medications: dao.medications[patientID],
	}
	if record.Visits == nil {
		record.Visits = []model.Visit{}
	}
	if record.Diagnoses == nil {
		record.Diagnoses = []model.Diagnosis{}
	}
	if record.Medications == nil {
		record.Medications = []model.Medication{}
	}
	return record, nil
}

// AppointmentsFor returns the appointments booked for a patient.
func (dao *PatientDAO) AppointmentsFor(ctx context.Context, patientID string) ([]model.Appointment, error) {
	dao.mu.RLock()
	defer dao.mu.RUnlock()

	appointments := []model.Appointment{}
	for _, a := range dao.appointments {
		if a.PatientID == patientID {
			appointments = append(appointments, a)
		}
	}
	return appointments, nil
}
