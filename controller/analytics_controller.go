// controller/analytics_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/service"
	"github.com/meridianhealth/clinicgate/util"
)

type AnalyticsController struct {
	analyticsService service.IAnalyticsService
}

func NewAnalyticsController(analyticsService service.IAnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// RegisterSummaryRoutes registers the population summary route, open to any
// authenticated user.
func (ac *AnalyticsController) RegisterSummaryRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	{
		analytics.GET("/summary", ac.Summary)
	}
}

// RegisterROIRoutes registers the ROI calculator route.
func (ac *AnalyticsController) RegisterROIRoutes(r *gin.RouterGroup) {
	analytics := r.Group("/analytics")
	{
		analytics.POST("/roi", ac.CalculateROI)
	}
}

// Summary endpoint
func (ac *AnalyticsController) Summary(c *gin.Context) {
	data, err := ac.analyticsService.AnonymizedAnalytics(c)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to compute analytics summary", err)
		return
	}

	c.JSON(http.StatusOK, data)
}

// CalculateROI endpoint
func (ac *AnalyticsController) CalculateROI(c *gin.Context) {
	var params model.ROICalculationParams
	if err := c.ShouldBindJSON(&params); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid ROI parameters", clinic_errors.ErrInvalidROIParams)
		return
	}

	result, err := ac.analyticsService.CalculateROI(c, params)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid ROI parameters", err)
		return
	}

	c.JSON(http.StatusOK, result)
}
