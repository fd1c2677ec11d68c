package server

import (
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/portfoliosite/backend/internal/models"
	"github.com/portfoliosite/backend/internal/validation"
)

// Contact godoc
// @Summary Submit contact form
// @Description Validate a contact submission and relay it to the site operator by email
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactSubmission true "Contact submission"
// @Success 200 {object} map[string]interface{} "Message sent"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 429 {object} map[string]interface{} "Rate limited"
// @Failure 500 {object} map[string]interface{} "Email service unavailable"
// @Router /api/contact [post]
func (s *Server) Contact(c echo.Context) error {
	var req models.ContactSubmission
	// A missing or malformed body is treated as an empty submission and falls
	// through to validation.
	_ = c.Bind(&req)

	errs := validation.All(req.Name, req.Email, req.Message)
	if len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":   "Validation failed",
			"details": errs,
			"message": strings.Join(errs, ". "),
		})
	}

	if !s.Cfg.MailConfigured() {
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":   "Email service not configured",
			"message": "The contact form is temporarily unavailable. Please try again later.",
		})
	}

	sub := models.ContactSubmission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
	if err := s.Mailer.Send(sub); err != nil {
		// Operators get the cause; the client only gets a generic message.
		log.Printf("[contact-backend] sendMail failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]any{
			"error":   "Failed to send email",
			"message": "There was a problem sending your message. Please try again later or contact me directly.",
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": "Message sent successfully",
	})
}
