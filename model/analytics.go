package model

// DistributionBucket is a named count used by the analytics summaries.
type DistributionBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type AnonymizedAnalyticsData struct {
	PatientCount        int                  `json:"patient_count"`
	AverageAge          int                  `json:"average_age"`
	GenderDistribution  []DistributionBucket `json:"gender_distribution"`
	ConditionPrevalence []DistributionBucket `json:"condition_prevalence"`
	MigrationProgress   int                  `json:"migration_progress"`
}
