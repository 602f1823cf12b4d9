package model

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

type VulnerabilityStatus string

const (
	StatusVulnerable VulnerabilityStatus = "Vulnerable"
	StatusMitigated  VulnerabilityStatus = "Mitigated"
	StatusPatched    VulnerabilityStatus = "Patched"
)

// Vulnerability is a tracked finding against clinic infrastructure. Status
// only moves forward: Vulnerable/Mitigated -> Patched.
type Vulnerability struct {
	ID              string              `json:"id"`
	CVEID           string              `json:"cve_id"`
	Category        string              `json:"category"` // OS, Database, Application, Network
	Severity        RiskLevel           `json:"severity"`
	Description     string              `json:"description"`
	Status          VulnerabilityStatus `json:"status"`
	RemediationCost float64             `json:"remediation_cost"`
	Remediation     string              `json:"remediation"`
}

// RiskFinding is computed from audit data at query time, never stored.
type RiskFinding struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"` // Authentication, Data Integrity, Cloud Security
	Level          RiskLevel `json:"level"`
	Description    string    `json:"description"`
	Recommendation string    `json:"recommendation"`
}

type ROICalculationParams struct {
	ModernizationInvestment  float64 `json:"modernization_investment" binding:"required,gt=0"`
	AnnualMaintenanceSavings float64 `json:"annual_maintenance_savings" binding:"min=0"`
	RiskReductionPercentage  float64 `json:"risk_reduction_percentage" binding:"min=0,max=100"`
	// Detailed legacy cost components
	LicensingFees       float64 `json:"licensing_fees" binding:"min=0"`
	InfrastructureCosts float64 `json:"infrastructure_costs" binding:"min=0"`
	StaffingCosts       float64 `json:"staffing_costs" binding:"min=0"`
	DowntimeCosts       float64 `json:"downtime_costs" binding:"min=0"`
}

type ROICalculationResult struct {
	AnnualSavings      float64 `json:"annual_savings"`
	PaybackPeriod      float64 `json:"payback_period"` // in years
	FiveYearProjection float64 `json:"five_year_projection"`
	ReducedRiskCost    float64 `json:"reduced_risk_cost"`
}
