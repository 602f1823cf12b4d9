// audit/seed.go
package audit

import "time"

const seedTimeLayout = "2006-01-02 15:04:05"

func mustTime(s string) time.Time {
	t, err := time.Parse(seedTimeLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedLogs returns the audit trail carried over from the legacy system.
func SeedLogs() []AuditLog {
	return []AuditLog{
		{ID: "l001", Timestamp: mustTime("2025-09-01 09:05:12"), User: "admin@secure.med", Action: ActionLoginSuccess, IPAddress: "192.168.1.10", Details: "Admin user logged in."},
		{ID: "l002", Timestamp: mustTime("2025-09-01 09:07:45"), User: "admin@secure.med", Action: ActionUserCreated, IPAddress: "192.168.1.10", Details: "Created user m.chen@secure.med."},
		{ID: "l003", Timestamp: mustTime("2025-09-01 10:15:23"), User: "doctor@secure.med", Action: ActionLoginSuccess, IPAddress: "10.0.5.25", Details: "Doctor user logged in."},
		{ID: "l004", Timestamp: mustTime("2025-09-01 10:16:01"), User: "doctor@secure.med", Action: ActionPatientRecordView, IPAddress: "10.0.5.25", Details: "Viewed record for patient p002."},
		{ID: "l005", Timestamp: mustTime("2025-09-01 11:30:59"), User: "hacker@evil.com", Action: ActionLoginFailure, IPAddress: "203.0.113.50", Details: "Failed login attempt for user admin@secure.med."},
		{ID: "l006", Timestamp: mustTime("2025-09-01 11:31:05"), User: "hacker@evil.com", Action: ActionLoginFailure, IPAddress: "203.0.113.50", Details: "Failed login attempt for user admin@secure.med."},
		{ID: "l007", Timestamp: mustTime("2025-09-02 14:20:00"), User: "nurse.jones@secure.med", Action: ActionLoginSuccess, IPAddress: "10.0.5.28", Details: "Nurse user logged in."},
		{ID: "l008", Timestamp: mustTime("2025-09-02 14:21:15"), User: "nurse.jones@secure.med", Action: "PATIENT_VITALS_UPDATE", IPAddress: "10.0.5.28", Details: "Updated vitals for patient p001."},
		{ID: "l009", Timestamp: mustTime("2025-09-02 15:00:10"), User: "analyst@secure.med", Action: ActionLoginSuccess, IPAddress: "172.16.0.100", Details: "Analyst user logged in."},
		{ID: "l010", Timestamp: mustTime("2025-09-02 15:02:30"), User: "analyst@secure.med", Action: "ANALYTICS_REPORT_RUN", IPAddress: "172.16.0.100", Details: "Generated population health report."},
		{ID: "l011", Timestamp: mustTime("2025-09-03 08:30:00"), User: "s.davis@secure.med", Action: ActionLoginSuccess, IPAddress: "10.0.5.30", Details: "Doctor user logged in."},
		{ID: "l012", Timestamp: mustTime("2025-09-03 08:32:45"), User: "s.davis@secure.med", Action: ActionPatientRecordView, IPAddress: "10.0.5.30", Details: "Viewed record for patient p015."},
		{ID: "l013", Timestamp: mustTime("2025-09-03 09:15:18"), User: "nurse.li@secure.med", Action: ActionLoginSuccess, IPAddress: "10.0.5.35", Details: "Nurse user logged in."},
		{ID: "l014", Timestamp: mustTime("2025-09-03 09:18:22"), User: "nurse.li@secure.med", Action: "MEDICATION_ADMINISTERED", IPAddress: "10.0.5.35", Details: "Administered medication for patient p022."},
		{ID: "l015", Timestamp: mustTime("2025-09-03 11:00:00"), User: "admin@secure.med", Action: "SECURITY_SCAN_INITIATED", IPAddress: "192.168.1.10", Details: "Admin initiated a full system vulnerability scan."},
		{ID: "l016", Timestamp: mustTime("2025-09-03 11:05:00"), User: "j.andrews@secure.med", Action: ActionPatientRecordView, IPAddress: "10.0.5.26", Details: "Viewed record for patient p008."},
		{ID: "l017", Timestamp: mustTime("2025-09-03 13:45:00"), User: "m.chen@secure.med", Action: "DIAGNOSIS_ADDED", IPAddress: "10.0.5.27", Details: "Added new diagnosis for patient p003."},
		{ID: "l018", Timestamp: mustTime("2025-09-03 16:20:15"), User: "doctor@secure.med", Action: ActionLogout, IPAddress: "10.0.5.25", Details: "Doctor user logged out."},
	}
}
