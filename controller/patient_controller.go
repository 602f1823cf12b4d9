// controller/patient_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	"github.com/meridianhealth/clinicgate/service"
	"github.com/meridianhealth/clinicgate/util"
)

type PatientController struct {
	patientService service.IPatientService
}

func NewPatientController(patientService service.IPatientService) *PatientController {
	return &PatientController{
		patientService: patientService,
	}
}

// RegisterRoutes registers the clinical patient routes.
func (pc *PatientController) RegisterRoutes(r *gin.RouterGroup) {
	patients := r.Group("/patients")
	{
		patients.GET("", pc.SearchPatients)
		patients.GET("/:id/record", pc.GetMedicalRecord)
		patients.GET("/:id/appointments", pc.ListAppointments)
	}
}

// RegisterLegacyRoutes registers the sensitive legacy collection route.
func (pc *PatientController) RegisterLegacyRoutes(r *gin.RouterGroup) {
	legacy := r.Group("/legacy")
	{
		legacy.GET("/patients", pc.ListSensitivePatients)
	}
}

// SearchPatients endpoint
func (pc *PatientController) SearchPatients(c *gin.Context) {
	query := c.Query("q")

	patients, err := pc.patientService.SearchPatients(c, query)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to search patients", err)
		return
	}

	c.JSON(http.StatusOK, patients)
}

// GetMedicalRecord endpoint
func (pc *PatientController) GetMedicalRecord(c *gin.Context) {
	patientID := c.Param("id")

	actor, err := util.GetCurrentUser(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	record, err := pc.patientService.GetMedicalRecord(c, patientID, actor.Email, c.ClientIP())
	if err != nil {
		switch err {
		case clinic_errors.ErrPatientNotFound:
			util.RespondWithError(c, http.StatusNotFound, "Patient not found", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve medical record", clinic_errors.ErrInternalServer)
		}
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListAppointments endpoint
func (pc *PatientController) ListAppointments(c *gin.Context) {
	patientID := c.Param("id")

	appointments, err := pc.patientService.AppointmentsFor(c, patientID)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list appointments", err)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// ListSensitivePatients endpoint
func (pc *PatientController) ListSensitivePatients(c *gin.Context) {
	query := c.Query("q")

	records, err := pc.patientService.ListSensitivePatients(c, query)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list legacy patients", err)
		return
	}

	c.JSON(http.StatusOK, records)
}
