// Package handlers wires the HTTP surface: route registration, request
// binding and the mapping from service errors to status codes.
package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/condobooks/condo_books_app/internal/core/ports/services"
	"github.com/condobooks/condo_books_app/internal/middleware"
	"github.com/condobooks/condo_books_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.AppConfig,
	services *portssvc.ServiceContainer,
	loginLimiter *limiter.Limiter,
) {
	registerCustomValidators()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, services.Auth, loginLimiter)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and
// delegates to the per-entity registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.AppConfig,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerImportRoutes(v1, services.Import)
	registerTransactionRoutes(v1, services.Transaction)
	registerRuleRoutes(v1, services.Rule)
	registerAccountRoutes(v1, services.Account)
	registerJournalRoutes(v1, services.Ledger)
	registerReportRoutes(v1, services.Reporting)
	registerSystemRoutes(v1, services.System)
}

// registerCustomValidators adds the isodate binding validation used by
// every date field: a literal YYYY-MM-DD calendar date.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	})
}
