package server

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/portfoliosite/backend/internal/models"
)

// clientIP derives the key used for both rate limiting and visit tracking.
// The fallback chain is defensive: framework-resolved IP (which honors the
// trusted proxy hop), then the first forwarded-for entry, then the raw socket
// address, then the literal "unknown".
func clientIP(c echo.Context) string {
	if ip := c.RealIP(); ip != "" {
		return ip
	}
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(c.Request().RemoteAddr); err == nil && host != "" {
		return host
	}
	return "unknown"
}

// VisitRecorder observes every request outside /api/admin and upserts the
// visit log entry for the client IP. It never alters the response and never
// fails the request: an unresolvable IP or a dead geolocation lookup degrades
// to "unknown"/nil fields.
func (s *Server) VisitRecorder() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Avoid counting the admin page's own API calls.
			if strings.HasPrefix(c.Request().URL.Path, "/api/admin") {
				return next(c)
			}
			ip := clientIP(c)
			s.Visits.Record(ip, c.Request().UserAgent(), func() *models.Geolocation {
				return s.Locator.Lookup(ip)
			})
			return next(c)
		}
	}
}

// RateLimit gates the contact endpoint at a fixed window per client IP and
// exposes the standard RateLimit-* response headers on every pass through.
func (s *Server) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := s.Limiter.Allow(clientIP(c))

			h := c.Response().Header()
			h.Set("RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("RateLimit-Remaining", strconv.Itoa(res.Remaining))
			h.Set("RateLimit-Reset", strconv.Itoa(int((res.ResetAfter+time.Second-1)/time.Second)))

			if !res.Allowed {
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"error":   "Too many requests",
					"message": "You have reached the contact rate limit. Please wait a minute and try again.",
				})
			}
			return next(c)
		}
	}
}
