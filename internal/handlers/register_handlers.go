package handlers

import (
	portssvc "github.com/chaikhata/shop_ledger_app/internal/core/ports/services"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// adviceMiddleware is applied only to the advice route; the other endpoints
// never leave the process and stay unthrottled.
func RegisterRoutes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	adviceMiddleware ...gin.HandlerFunc,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	r.GET("/", getHome)

	setupAPIV1Routes(r, services, adviceMiddleware...)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
	adviceMiddleware ...gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1")

	// Delegate route registration to specific handlers, passing required services
	registerTransactionRoutes(v1, services.Ledger)
	registerStaffRoutes(v1, services.Payroll)
	registerReportingRoutes(v1, services.Reporting)
	registerProfileRoutes(v1, services.Profile)
	registerExportRoutes(v1, services.Export)
	registerAdviceRoutes(v1, services.Advisor, adviceMiddleware...)
}
