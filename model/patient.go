package model

// Patient is the de-identified record served from the modern cloud system.
// It is always derived from SensitivePatientRecord by omission of the
// restricted fields.
type Patient struct {
	ID                string `json:"id"`
	MRN               string `json:"mrn"` // Medical Record Number
	Name              string `json:"name"`
	DOB               string `json:"dob"`
	Gender            string `json:"gender"`
	BloodType         string `json:"blood_type"`
	LastVisit         string `json:"last_visit"`
	InsuranceProvider string `json:"insurance_provider"`
	EmergencyContact  string `json:"emergency_contact"`
}

// SensitivePatientRecord is the full on-premise legacy record. Only the
// privileged query path may return it.
type SensitivePatientRecord struct {
	Patient
	Conditions  []string `json:"conditions"`
	SSN         string   `json:"ssn"`
	BillingCode string   `json:"billing_code"`
}

// Deidentified strips the restricted fields from the legacy record.
func (r SensitivePatientRecord) Deidentified() Patient {
	return r.Patient
}

type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patient_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
}

type Vitals struct {
	Temp string `json:"temp"`
	BP   string `json:"bp"`
	HR   int    `json:"hr"`
}

type Visit struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Doctor string `json:"doctor"`
	Reason string `json:"reason"`
	Vitals Vitals `json:"vitals"`
	Notes  string `json:"notes"`
}

type Diagnosis struct {
	ID          string `json:"id"`
	Code        string `json:"code"` // e.g. ICD-10
	Description string `json:"description"`
	DiagnosedOn string `json:"diagnosed_on"`
}

type Medication struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
}

// MedicalRecord is assembled per patient at query time; it is never stored.
type MedicalRecord struct {
	Patient     Patient      `json:"patient"`
	Visits      []Visit      `json:"visits"`
	Diagnoses   []Diagnosis  `json:"diagnoses"`
	Medications []Medication `json:"medications"`
}
