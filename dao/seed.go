// dao/seed.go
package dao

import (
	"fmt"

	"github.com/meridianhealth/clinicgate/model"
)

// Seed dataset migrated from the legacy clinic systems: the on-premise
// directory and sensitive patient records, and the cloud system's
// appointments and clinical sub-records. Collections are process-local;
// nothing here survives a restart.

// SeedUsers returns the staff directory in its canonical order.
func SeedUsers() []model.User {
	return []model.User{
		{ID: "1", Email: "admin@secure.med", Name: "Dr. Evelyn Reed", Role: model.RoleAdmin},
		{ID: "2", Email: "doctor@secure.med", Name: "Dr. Ben Carter", Role: model.RoleDoctor},
		{ID: "3", Email: "j.andrews@secure.med", Name: "Dr. Joanna Andrews", Role: model.RoleDoctor},
		{ID: "4", Email: "nurse.jones@secure.med", Name: "Chris Jones, RN", Role: model.RoleNurse},
		{ID: "5", Email: "analyst@secure.med", Name: "Sam Taylor", Role: model.RoleAnalyst},
		{ID: "6", Email: "m.chen@secure.med", Name: "Dr. Marcus Chen", Role: model.RoleDoctor},
		{ID: "7", Email: "s.davis@secure.med", Name: "Dr. Sarah Davis", Role: model.RoleDoctor},
		{ID: "8", Email: "nurse.li@secure.med", Name: "Wei Li, RN", Role: model.RoleNurse},
		{ID: "9", Email: "r.miller@secure.med", Name: "Robert Miller, RN", Role: model.RoleNurse},
		{ID: "10", Email: "analyst.kim@secure.med", Name: "Jin-Sun Kim", Role: model.RoleAnalyst},
	}
}

// SeedSensitivePatients returns the full legacy patient records: twenty
// curated records followed by eighty generated ones, matching the legacy
// export.
func SeedSensitivePatients() []model.SensitivePatientRecord {
	patients := []model.SensitivePatientRecord{
		sp("p001", "MRN84321", "John Smith", "1985-05-20", "Male", "O+", "2023-11-10", "BlueCross", "Jane Smith (Spouse)", []string{"Hypertension", "Type 2 Diabetes"}, "XXX-XX-1234", "ICD-10: I10"),
		sp("p002", "MRN84322", "Jane Doe", "1992-08-15", "Female", "A-", "2024-01-05", "Aetna", "John Doe (Spouse)", []string{"Asthma"}, "XXX-XX-5678", "ICD-10: J45"),
		sp("p003", "MRN84323", "Peter Jones", "1970-02-25", "Male", "B+", "2023-12-22", "Cigna", "Mary Jones (Daughter)", []string{"Arthritis"}, "XXX-XX-9012", "ICD-10: M19"),
		sp("p004", "MRN84324", "Mary Williams", "2001-11-30", "Female", "AB+", "2024-02-01", "UnitedHealth", "David Williams (Father)", []string{"Migraine"}, "XXX-XX-3456", "ICD-10: G43"),
		sp("p005", "MRN84325", "David Brown", "1965-09-12", "Male", "O-", "2024-03-10", "BlueCross", "Susan Brown (Spouse)", []string{"High Cholesterol"}, "XXX-XX-7890", "ICD-10: E78.5"),
		sp("p006", "MRN84326", "Emily Davis", "1988-07-22", "Female", "A+", "2024-04-15", "Aetna", "Michael Davis (Husband)", []string{"Anxiety"}, "XXX-XX-1122", "ICD-10: F41.1"),
		sp("p007", "MRN84327", "Michael Garcia", "1975-03-18", "Male", "B-", "2024-05-01", "Cigna", "Maria Garcia (Spouse)", []string{"Gout"}, "XXX-XX-3344", "ICD-10: M10"),
		sp("p008", "MRN84328", "Jessica Rodriguez", "1995-12-01", "Female", "O+", "2024-04-20", "UnitedHealth", "Carlos Rodriguez (Brother)", []string{"Eczema"}, "XXX-XX-5566", "ICD-10: L30.9"),
		sp("p009", "MRN84329", "William Martinez", "1959-01-30", "Male", "AB-", "2024-03-25", "BlueCross", "Linda Martinez (Wife)", []string{"COPD"}, "XXX-XX-7788", "ICD-10: J44"),
		sp("p010", "MRN84330", "Linda Hernandez", "1962-10-10", "Female", "A+", "2024-05-05", "Aetna", "Jose Hernandez (Husband)", []string{"Osteoporosis"}, "XXX-XX-9900", "ICD-10: M81"),
		sp("p011", "MRN84331", "James Wilson", "2005-06-25", "Male", "O-", "2024-04-18", "Cigna", "Karen Wilson (Mother)", []string{"Acne"}, "XXX-XX-2468", "ICD-10: L70.0"),
		sp("p012", "MRN84332", "Barbara Moore", "1953-04-12", "Female", "B+", "2024-03-12", "UnitedHealth", "Thomas Moore (Son)", []string{"Alzheimer's Disease"}, "XXX-XX-1357", "ICD-10: G30"),
		sp("p013", "MRN84333", "Richard Taylor", "1980-09-05", "Male", "A-", "2024-05-10", "BlueCross", "Susan Taylor (Wife)", []string{"GERD"}, "XXX-XX-8642", "ICD-10: K21.9"),
		sp("p014", "MRN84334", "Susan Anderson", "1998-02-14", "Female", "O+", "2024-04-28", "Aetna", "Robert Anderson (Father)", []string{"Anemia"}, "XXX-XX-9753", "ICD-10: D64.9"),
		sp("p015", "MRN84335", "Joseph Thomas", "1978-11-23", "Male", "AB+", "2024-02-20", "Cigna", "Nancy Thomas (Wife)", []string{"Sleep Apnea"}, "XXX-XX-2580", "ICD-10: G47.33"),
		sp("p016", "MRN84336", "Sarah Jackson", "1983-08-08", "Female", "B-", "2024-05-11", "UnitedHealth", "Paul Jackson (Husband)", []string{"Hypothyroidism"}, "XXX-XX-3691", "ICD-10: E03.9"),
		sp("p017", "MRN84337", "Charles White", "1968-06-16", "Male", "A+", "2024-03-03", "BlueCross", "Patricia White (Wife)", []string{"Hypertension"}, "XXX-XX-1470", "ICD-10: I10"),
		sp("p018", "MRN84338", "Patricia Harris", "1990-01-01", "Female", "O-", "2024-04-09", "Aetna", "Mark Harris (Husband)", []string{"PCOS"}, "XXX-XX-2581", "ICD-10: E28.2"),
		sp("p019", "MRN84339", "Christopher Martin", "1972-07-07", "Male", "B+", "2024-05-14", "Cigna", "Donna Martin (Wife)", []string{"Type 2 Diabetes"}, "XXX-XX-3692", "ICD-10: E11"),
		sp("p020", "MRN84340", "Lisa Thompson", "1985-05-19", "Female", "AB+", "2024-02-15", "UnitedHealth", "Brian Thompson (Husband)", []string{"Fibromyalgia"}, "XXX-XX-4703", "ICD-10: M79.7"),
	}
	return append(patients, generatedPatients()...)
}

// generatedPatients reproduces the bulk import from the legacy migration.
func generatedPatients() []model.SensitivePatientRecord {
	maleNames := []string{"Robert", "Paul", "Mark", "Brian", "Jason", "Steven", "Kevin", "Edward"}
	femaleNames := []string{"Karen", "Betty", "Helen", "Sandra", "Donna", "Carol", "Michelle", "Dorothy"}
	lastNames := []string{"Hall", "Allen", "Young", "King", "Wright", "Scott", "Green", "Baker", "Adams", "Nelson", "Carter", "Mitchell"}
	bloodTypes := []string{"A+", "O+", "B+", "AB+", "A-", "O-", "B-", "AB-"}
	insurers := []string{"Aetna", "Cigna", "UnitedHealth", "BlueCross"}
	conditions := []string{"Asthma", "Hypertension", "High Cholesterol", "Arthritis"}
	billingCodes := []string{"J45", "I10", "E78.5", "M19"}

	patients := make([]model.SensitivePatientRecord, 0, 80)
	for i := 0; i < 80; i++ {
		id := 21 + i
		gender := "Male"
		firstNames := maleNames
		if id%2 == 0 {
			gender = "Female"
			firstNames = femaleNames
		}
		year := 1950 + (id*2)%55
		patients = append(patients, model.SensitivePatientRecord{
			Patient: model.Patient{
				ID:                fmt.Sprintf("p%03d", id),
				MRN:               fmt.Sprintf("MRN843%d", 41+i),
				Name:              fmt.Sprintf("%s %s", firstNames[i%len(firstNames)], lastNames[i%len(lastNames)]),
				DOB:               fmt.Sprintf("%d-%02d-%02d", year, (id%12)+1, (id%28)+1),
				Gender:            gender,
				BloodType:         bloodTypes[id%8],
				LastVisit:         fmt.Sprintf("2024-%02d-%02d", (id%5)+1, (id%9)+10),
				InsuranceProvider: insurers[i%4],
				EmergencyContact:  "N/A",
			},
			Conditions:  []string{conditions[i%4]},
			SSN:         fmt.Sprintf("XXX-XX-%d", 1000+i),
			BillingCode: fmt.Sprintf("ICD-10: %s", billingCodes[i%4]),
		})
	}
	return patients
}

func sp(id, mrn, name, dob, gender, bloodType, lastVisit, insurer, contact string, conditions []string, ssn, billingCode string) model.SensitivePatientRecord {
	return model.SensitivePatientRecord{
		Patient: model.Patient{
			ID:                id,
			MRN:               mrn,
			Name:              name,
			DOB:               dob,
			Gender:            gender,
			BloodType:         bloodType,
			LastVisit:         lastVisit,
			InsuranceProvider: insurer,
			EmergencyContact:  contact,
		},
		Conditions:  conditions,
		SSN:         ssn,
		BillingCode: billingCode,
	}
}

// SeedAppointments returns the cloud system's appointment book.
func SeedAppointments() []model.Appointment {
	return []model.Appointment{
		{ID: "a001", PatientID: "p001", Date: "2024-08-10", Time: "10:00 AM", Reason: "Follow-up"},
		{ID: "a002", PatientID: "p002", Date: "2024-08-12", Time: "11:30 AM", Reason: "Annual Checkup"},
		{ID: "a003", PatientID: "p004", Date: "2024-08-10", Time: "02:00 PM", Reason: "Consultation"},
		{ID: "a004", PatientID: "p005", Date: "2024-09-01", Time: "09:00 AM", Reason: "Bloodwork Review"},
		{ID: "a005", PatientID: "p007", Date: "2024-08-15", Time: "03:00 PM", Reason: "Gout follow-up"},
		{ID: "a006", PatientID: "p011", Date: "2024-08-18", Time: "10:30 AM", Reason: "Dermatology check"},
		{ID: "a007", PatientID: "p019", Date: "2024-08-20", Time: "09:30 AM", Reason: "Diabetes management"},
		{ID: "a008", PatientID: "p025", Date: "2024-08-22", Time: "01:00 PM", Reason: "Lipid panel review"},
		{ID: "a009", PatientID: "p030", Date: "2024-08-25", Time: "11:00 AM", Reason: "Annual Physical"},
		{ID: "a010", PatientID: "p042", Date: "2024-08-28", Time: "04:00 PM", Reason: "Allergy testing"},
	}
}

// SeedVisits returns clinical visit histories keyed by patient id.
func SeedVisits() map[string][]model.Visit {
	return map[string][]model.Visit{
		"p001": {{ID: "v01", Date: "2023-11-10", Doctor: "Dr. Ben Carter", Reason: "Hypertension Check", Vitals: model.Vitals{Temp: "98.6°F", BP: "140/90", HR: 75}, Notes: "Patient blood pressure remains elevated. Advised dietary changes and scheduled follow-up."}},
		"p002": {{ID: "v02", Date: "2024-01-05", Doctor: "Dr. Joanna Andrews", Reason: "Asthma flare-up", Vitals: model.Vitals{Temp: "99.1°F", BP: "120/80", HR: 88}, Notes: "Prescribed new inhaler, symptoms have subsided."}},
		"p006": {{ID: "v03", Date: "2024-04-15", Doctor: "Dr. Sarah Davis", Reason: "Anxiety consultation", Vitals: model.Vitals{Temp: "98.7°F", BP: "118/78", HR: 82}, Notes: "Discussed coping strategies and referred to therapy. No medication prescribed at this time."}},
		"p017": {{ID: "v04", Date: "2024-03-03", Doctor: "Dr. Marcus Chen", Reason: "Routine Checkup", Vitals: model.Vitals{Temp: "98.5°F", BP: "135/85", HR: 70}, Notes: "Continue current medication. Monitor blood pressure at home."}},
		"p025": {{ID: "v05", Date: "2024-01-30", Doctor: "Dr. Ben Carter", Reason: "Cholesterol management", Vitals: model.Vitals{Temp: "98.6°F", BP: "138/88", HR: 72}, Notes: "Lipid panel results show high LDL. Started patient on Atorvastatin."}},
	}
}

// SeedDiagnoses returns diagnosis lists keyed by patient id.
func SeedDiagnoses() map[string][]model.Diagnosis {
	return map[string][]model.Diagnosis{
		"p001": {
			{ID: "d01", Code: "I10", Description: "Essential (primary) hypertension", DiagnosedOn: "2022-01-15"},
			{ID: "d02", Code: "E11", Description: "Type 2 diabetes mellitus", DiagnosedOn: "2021-06-20"},
		},
		"p002": {{ID: "d03", Code: "J45", Description: "Asthma", DiagnosedOn: "2010-03-10"}},
		"p003": {{ID: "d04", Code: "M19.90", Description: "Unspecified osteoarthritis", DiagnosedOn: "2019-07-22"}},
		"p004": {{ID: "d05", Code: "G43.909", Description: "Migraine, unspecified", DiagnosedOn: "2021-01-10"}},
		"p005": {{ID: "d06", Code: "E78.5", Description: "Hyperlipidemia, unspecified", DiagnosedOn: "2020-03-14"}},
		"p016": {{ID: "d07", Code: "E03.9", Description: "Hypothyroidism, unspecified", DiagnosedOn: "2018-11-02"}},
		"p021": {{ID: "d08", Code: "K50.90", Description: "Crohn's disease, unspecified", DiagnosedOn: "2015-09-01"}},
	}
}

// SeedMedications returns medication lists keyed by patient id.
func SeedMedications() map[string][]model.Medication {
	return map[string][]model.Medication{
		"p001": {
			{ID: "m01", Name: "Lisinopril", Dosage: "10mg", Frequency: "Once daily"},
			{ID: "m02", Name: "Metformin", Dosage: "500mg", Frequency: "Twice daily"},
		},
		"p002": {{ID: "m03", Name: "Albuterol Sulfate", Dosage: "90mcg", Frequency: "As needed for shortness of breath"}},
		"p003": {{ID: "m04", Name: "Meloxicam", Dosage: "15mg", Frequency: "Once daily"}},
		"p004": {{ID: "m05", Name: "Sumatriptan", Dosage: "50mg", Frequency: "As needed for migraine"}},
		"p005": {{ID: "m06", Name: "Atorvastatin", Dosage: "20mg", Frequency: "Once daily at bedtime"}},
		"p016": {{ID: "m07", Name: "Levothyroxine", Dosage: "50mcg", Frequency: "Once daily"}},
		"p021": {{ID: "m08", Name: "Mesalamine", Dosage: "1.2g", Frequency: "Twice daily"}},
	}
}

// SeedVulnerabilities returns the open security findings register.
func SeedVulnerabilities() []model.Vulnerability {
	return []model.Vulnerability{
		{ID: "v001", CVEID: "CVE-2021-44228", Category: "Application", Severity: model.RiskCritical, Description: "Log4j remote code execution vulnerability on legacy billing server.", Status: model.StatusVulnerable, RemediationCost: 25000, Remediation: "Update Log4j library to version 2.17.1 or newer on all affected servers immediately. Isolate the billing server from the main network until patched."},
		{ID: "v002", CVEID: "CVE-2022-22965", Category: "Application", Severity: model.RiskCritical, Description: "Spring4Shell vulnerability in patient intake portal.", Status: model.StatusPatched, RemediationCost: 15000, Remediation: "Upgrade Spring Framework to versions 5.3.18+ or 5.2.20+. The patch has been successfully applied."},
		{ID: "v003", CVEID: "N/A", Category: "Database", Severity: model.RiskHigh, Description: "Unencrypted patient data backups stored on a network share.", Status: model.StatusVulnerable, RemediationCost: 40000, Remediation: "Enable AES-256 encryption for all backup files. Restrict access to the network share to authorized database administrator accounts only."},
		{ID: "v004", CVEID: "CVE-2019-0708", Category: "OS", Severity: model.RiskHigh, Description: "BlueKeep (RDP) vulnerability on unpatched Windows Server 2008.", Status: model.StatusMitigated, RemediationCost: 5000, Remediation: "Network Level Authentication (NLA) has been enabled as a temporary workaround. A full OS patch is required, but the immediate risk is reduced."},
		{ID: "v005", CVEID: "N/A", Category: "Network", Severity: model.RiskMedium, Description: "Internal lab equipment using default manufacturer passwords.", Status: model.StatusVulnerable, RemediationCost: 8000, Remediation: "Change the default passwords on all specified lab devices. Implement a policy for regular password rotation on network-connected equipment."},
		{ID: "v006", CVEID: "CVE-2023-34362", Category: "Application", Severity: model.RiskCritical, Description: "MOVEit Transfer SQL Injection vulnerability leading to data exfiltration.", Status: model.StatusVulnerable, RemediationCost: 55000, Remediation: "Apply the latest security patch from Progress Software. Review logs for any signs of unauthorized access or data transfer."},
		{ID: "v007", CVEID: "N/A", Category: "OS", Severity: model.RiskHigh, Description: "End-of-life Windows XP running on a critical imaging machine.", Status: model.StatusVulnerable, RemediationCost: 30000, Remediation: "Isolate the machine in a segmented network VLAN with strict firewall rules. Prioritize upgrading the machine and its software."},
		{ID: "v008", CVEID: "CVE-2020-1472", Category: "OS", Severity: model.RiskCritical, Description: "Zerologon (Netlogon elevation of privilege) on domain controller.", Status: model.StatusVulnerable, RemediationCost: 45000, Remediation: "Apply the August 2020 and February 2021 Windows Server security updates to all domain controllers immediately."},
		{ID: "v009", CVEID: "N/A", Category: "Database", Severity: model.RiskMedium, Description: "SQL server allows connections with TLS 1.0, a weak protocol.", Status: model.StatusMitigated, RemediationCost: 7000, Remediation: "Configuration has been updated to disable TLS 1.0/1.1. Final changes require a server restart, scheduled for the next maintenance window."},
		{ID: "v010", CVEID: "N/A", Category: "Network", Severity: model.RiskLow, Description: "Guest Wi-Fi network is not fully segregated from the internal network.", Status: model.StatusPatched, RemediationCost: 12000, Remediation: "Firewall rules have been updated to completely isolate guest traffic from all internal corporate and medical resources."},
		{ID: "v011", CVEID: "CVE-2017-5638", Category: "Application", Severity: model.RiskHigh, Description: "Apache Struts remote code execution vulnerability on legacy HR portal.", Status: model.StatusVulnerable, RemediationCost: 22000, Remediation: "Upgrade Apache Struts to version 2.3.32 or 2.5.10.1 or newer. Since this system is legacy, plan for decommissioning."},
		{ID: "v012", CVEID: "N/A", Category: "Database", Severity: model.RiskHigh, Description: "Database admin account `sa` has a weak, easily guessable password.", Status: model.StatusVulnerable, RemediationCost: 5000, Remediation: "Immediately change the password for the `sa` account to a complex, randomly generated password. Review all uses of the account."},
		{ID: "v013", CVEID: "N/A", Category: "Application", Severity: model.RiskMedium, Description: "Cross-site scripting (XSS) vulnerability in patient search function.", Status: model.StatusVulnerable, RemediationCost: 18000, Remediation: "Implement input sanitization and output encoding on the search results page. A code-level fix is required by the development team."},
		{ID: "v014", CVEID: "CVE-2018-0171", Category: "Network", Severity: model.RiskHigh, Description: "Cisco Smart Install Protocol misuse allows for arbitrary code execution.", Status: model.StatusPatched, RemediationCost: 9000, Remediation: "The `no vstack` command has been applied to all affected Cisco switches, disabling the vulnerable protocol."},
		{ID: "v015", CVEID: "N/A", Category: "OS", Severity: model.RiskLow, Description: "Server room temperature alerts are not configured.", Status: model.StatusVulnerable, RemediationCost: 2000, Remediation: "Configure monitoring software to send email and SMS alerts if server room temperature exceeds 80°F (27°C)."},
	}
}
