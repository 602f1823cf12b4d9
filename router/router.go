// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/meridianhealth/clinicgate/controller"
	"github.com/meridianhealth/clinicgate/middleware"
	"github.com/meridianhealth/clinicgate/model"
	"github.com/meridianhealth/clinicgate/service"
)

// SetupRouter declares the full route surface with its role sets. Role
// enforcement happens here and only here; controllers assume an identity is
// already on the context for protected routes.
func SetupRouter(
	controllers *controller.Controllers,
	authService service.IAuthService,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.RateLimiter(rateLimitRequests, rateLimitDuration))

	api := router.Group("/api/v1")

	controllers.Auth.RegisterPublicRoutes(api)

	authed := api.Group("")
	authed.Use(middleware.SessionAuth(authService))
	{
		// Any authenticated user
		anyRole := authed.Group("")
		anyRole.Use(middleware.RequireRoles())
		controllers.Auth.RegisterProtectedRoutes(anyRole)
		controllers.Analytics.RegisterSummaryRoutes(anyRole)

		// Clinical staff
		clinical := authed.Group("")
		clinical.Use(middleware.RequireRoles(model.RoleDoctor, model.RoleNurse))
		controllers.Patient.RegisterRoutes(clinical)

		// Admin only
		admin := authed.Group("")
		admin.Use(middleware.RequireRoles(model.RoleAdmin))
		controllers.User.RegisterRoutes(admin)
		controllers.Audit.RegisterRoutes(admin)
		controllers.Security.RegisterRoutes(admin)
		controllers.Analytics.RegisterROIRoutes(admin)
		controllers.Patient.RegisterLegacyRoutes(admin)
	}

	return router
}
