// util/validation_util.go

package util

import (
	"fmt"
	"strings"

	"github.com/meridianhealth/clinicgate/model"
)

type ValidationUtil struct{}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{}
}

func (v *ValidationUtil) ValidateNewUser(name, email string, role model.Role) error {
	if name == "" {
		return fmt.Errorf("user name cannot be empty")
	}
	if email == "" {
		return fmt.Errorf("user email cannot be empty")
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("user email must be a valid address")
	}
	if !role.Valid() {
		return fmt.Errorf("user role must be one of Admin, Doctor, Nurse, Analyst")
	}
	return nil
}

func (v *ValidationUtil) ValidateROIParams(params model.ROICalculationParams) error {
	if params.ModernizationInvestment <= 0 {
		return fmt.Errorf("modernization investment must be positive")
	}
	if params.AnnualMaintenanceSavings < 0 {
		return fmt.Errorf("annual maintenance savings cannot be negative")
	}
	if params.RiskReductionPercentage < 0 || params.RiskReductionPercentage > 100 {
		return fmt.Errorf("risk reduction percentage must be between 0 and 100")
	}
	// The payback period divides by the combined annual savings; with both
	// savings inputs at zero the projection is undefined.
	if params.AnnualMaintenanceSavings == 0 && params.RiskReductionPercentage == 0 {
		return fmt.Errorf("annual maintenance savings and risk reduction cannot both be zero")
	}
	if params.LicensingFees < 0 || params.InfrastructureCosts < 0 || params.StaffingCosts < 0 || params.DowntimeCosts < 0 {
		return fmt.Errorf("legacy cost components cannot be negative")
	}
	return nil
}
