// errors/clinic_errors.go
package errors

import "errors"

var (
	ErrPatientNotFound       = errors.New("patient not found")
	ErrVulnerabilityNotFound = errors.New("vulnerability not found")
	ErrInvalidROIParams      = errors.New("invalid ROI parameters")

	ErrInternalServer = errors.New("internal server error")
)
