package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/ehr/patientdesk/internal/config"
	"github.com/ehr/patientdesk/internal/desk"
	"github.com/ehr/patientdesk/internal/domain/appointment"
	"github.com/ehr/patientdesk/internal/domain/emergency"
	"github.com/ehr/patientdesk/internal/domain/patient"
	"github.com/ehr/patientdesk/internal/domain/visit"
	"github.com/ehr/patientdesk/internal/platform/auth"
	"github.com/ehr/patientdesk/internal/platform/metrics"
	"github.com/ehr/patientdesk/internal/platform/middleware"
)

const version = "0.1.0"

// newServer builds the echo instance with every desk route mounted. m may be
// nil, in which case /metrics is not served.
func newServer(cfg *config.Config, logger zerolog.Logger, d *desk.Desk, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	})
	if m != nil {
		e.GET("/metrics", m.Handler())
	}

	// Auth middleware
	apiV1 := e.Group("/api/v1")
	if cfg.IsDev() {
		apiV1.Use(auth.DevAuthMiddleware(jwtConfig(cfg)))
	} else {
		apiV1.Use(auth.JWTMiddleware(jwtConfig(cfg)))
	}
	apiV1.Use(middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
		KeyFunc:           rateLimitKey,
	}))

	patient.NewHandler(d.Patients).RegisterRoutes(apiV1)
	appointment.NewHandler(d.Appointments).RegisterRoutes(apiV1)
	emergency.NewHandler(d.Emergencies).RegisterRoutes(apiV1)
	visit.NewHandler(d.Visits).RegisterRoutes(apiV1)

	return e
}

// rateLimitKey buckets requests per authenticated user and client address.
func rateLimitKey(c echo.Context) string {
	return auth.UserIDFromContext(c.Request().Context()) + "|" + c.RealIP()
}
