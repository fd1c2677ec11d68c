package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/portfoliosite/backend/internal/config"
	"github.com/portfoliosite/backend/internal/ratelimit"
	"github.com/portfoliosite/backend/internal/services"
	"github.com/portfoliosite/backend/internal/store"
)

type Server struct {
	Cfg     config.AppConfig
	Visits  *store.VisitStore
	Limiter *ratelimit.Limiter
	Mailer  services.Mailer
	Locator services.Locator
}

func New(e *echo.Echo, cfg config.AppConfig, visits *store.VisitStore, mailer services.Mailer, locator services.Locator) *Server {
	s := &Server{
		Cfg:     cfg,
		Visits:  visits,
		Limiter: ratelimit.New(cfg.RateLimitMax, time.Duration(cfg.RateLimitWindowMS)*time.Millisecond),
		Mailer:  mailer,
		Locator: locator,
	}

	// Honor one trusted proxy hop when resolving the client address.
	e.IPExtractor = echo.ExtractIPFromXFFHeader()

	// Security middleware
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("25K"))

	// Visit tracking runs on every route except the admin surface.
	e.Use(s.VisitRecorder())

	// Health
	e.GET("/api/health", s.Health)

	// Contact (rate limited per client IP)
	e.POST("/api/contact", s.Contact, s.RateLimit())

	// Admin (read-only, excluded from visit counting)
	e.GET("/api/admin/visits", s.AdminVisits)

	return s
}
