// audit/model.go
package audit

import "time"

// Known action codes. The vocabulary is open; repositories store whatever
// code the caller supplies.
const (
	ActionLoginSuccess           = "LOGIN_SUCCESS"
	ActionLoginFailure           = "LOGIN_FAILURE"
	ActionLogout                 = "LOGOUT"
	ActionUserCreated            = "USER_CREATED"
	ActionPatientRecordView      = "PATIENT_RECORD_VIEW"
	ActionVulnerabilityRemediate = "VULNERABILITY_REMEDIATED"
)

type AuditLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Action    string    `json:"action"`
	IPAddress string    `json:"ip_address"`
	Details   string    `json:"details"`
}
