package server

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health godoc
// @Summary Health check
// @Description Liveness probe for the contact backend
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Health status"
// @Router /api/health [get]
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"ok":      true,
		"service": "contact-backend",
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}
