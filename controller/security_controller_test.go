// controller/security_controller_test.go
package controller_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	testify_mock "github.com/stretchr/testify/mock"

	"github.com/meridianhealth/clinicgate/controller"
	clinic_errors "github.com/meridianhealth/clinicgate/errors"
	logger "github.com/meridianhealth/clinicgate/logging"
	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/test/mock"
	"github.com/meridianhealth/clinicgate/util"
)

func setupRouter(user *model.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if user != nil {
		r.Use(func(c *gin.Context) {
			c.Set(util.ContextUserKey, user)
			c.Next()
		})
	}
	return r
}

func TestSecurityController(t *testing.T) {
	logger.InitLogger("../logging")
	defer logger.Sync()

	admin := &model.User{ID: "1", Email: "admin@secure.med", Role: model.RoleAdmin}

	mockSecurityService := new(mock.MockSecurityService)
	securityController := controller.NewSecurityController(mockSecurityService)
	router := setupRouter(admin)
	api := router.Group("/")
	securityController.RegisterRoutes(api)

	t.Run("ListVulnerabilities_Success", func(t *testing.T) {
		vulnerabilities := []model.Vulnerability{
			{ID: "v001", CVEID: "CVE-2021-44228", Severity: model.RiskCritical, Status: model.StatusVulnerable},
		}
		mockSecurityService.
			On("ListVulnerabilities", testify_mock.Anything).
			Return(vulnerabilities, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/vulnerabilities", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []model.Vulnerability
		json.NewDecoder(w.Body).Decode(&response)
		assert.Len(t, response, 1)
		assert.Equal(t, "v001", response[0].ID)
	})

	t.Run("Remediate_Success", func(t *testing.T) {
		patched := &model.Vulnerability{ID: "v001", Status: model.StatusPatched}
		mockSecurityService.
			On("Remediate", testify_mock.Anything, "v001", admin.Email, testify_mock.Anything).
			Return(patched, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/vulnerabilities/v001/remediate", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response model.Vulnerability
		json.NewDecoder(w.Body).Decode(&response)
		assert.Equal(t, model.StatusPatched, response.Status)
	})

	t.Run("Remediate_Failure_NotFound", func(t *testing.T) {
		mockSecurityService.
			On("Remediate", testify_mock.Anything, "v999", admin.Email, testify_mock.Anything).
			Return(nil, clinic_errors.ErrVulnerabilityNotFound).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/vulnerabilities/v999/remediate", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Remediate_Failure_NoIdentity", func(t *testing.T) {
		anonRouter := setupRouter(nil)
		anonAPI := anonRouter.Group("/")
		securityController.RegisterRoutes(anonAPI)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/vulnerabilities/v001/remediate", nil)
		anonRouter.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("SystemHealth_Success", func(t *testing.T) {
		findings := []model.RiskFinding{
			{ID: "risk002", Category: "Data Integrity", Level: model.RiskLow},
			{ID: "risk003", Category: "Cloud Security", Level: model.RiskMedium},
		}
		mockSecurityService.
			On("SystemHealth", testify_mock.Anything).
			Return(findings, nil).Once()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/system/health", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response []model.RiskFinding
		json.NewDecoder(w.Body).Decode(&response)
		assert.Len(t, response, 2)
	})

	mockSecurityService.AssertExpectations(t)
}
