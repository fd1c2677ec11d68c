package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminVisits godoc
// @Summary List visit records
// @Description Snapshot of the in-memory visit log with aggregate totals
// @Tags Admin
// @Produce json
// @Success 200 {object} map[string]interface{} "Visit records sorted by last seen"
// @Router /api/admin/visits [get]
func (s *Server) AdminVisits(c echo.Context) error {
	data := s.Visits.Snapshot()
	totalHits := 0
	for _, rec := range data {
		totalHits += rec.Hits
	}
	return c.JSON(http.StatusOK, map[string]any{
		"totalUnique": len(data),
		"totalHits":   totalHits,
		"data":        data,
	})
}
