// Package contactform is the client side of the contact pipeline: the same
// field rules the server enforces, the submission routine against
// POST /api/contact, and a three-step form state machine mirroring the site's
// contact wizard.
package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/portfoliosite/backend/internal/validation"
)

// FieldErrors maps a field name (name, email, message) to its error text.
type FieldErrors map[string]string

// ServerError is a non-2xx response from the contact endpoint. Details, when
// present, have already been attributed to fields by keyword.
type ServerError struct {
	StatusCode int
	Code       string
	Message    string
	Fields     FieldErrors
}

func (e *ServerError) Error() string {
	if e.Code != "" {
		return e.Code
	}
	return fmt.Sprintf("server error: status %d", e.StatusCode)
}

type response struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   http.DefaultClient,
	}
}

// Validate runs the shared rules over all three fields without touching the
// network.
func (c *Client) Validate(name, email, message string) FieldErrors {
	errs := FieldErrors{}
	for field, value := range map[string]string{
		"name":    name,
		"email":   email,
		"message": message,
	} {
		if msg := validation.Field(field, value); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// Submit posts a trimmed submission to the contact endpoint. The fields are
// assumed to have passed Validate; the server re-validates regardless, and a
// 400 comes back as a *ServerError with per-field details. Network failures
// are returned as-is.
func (c *Client) Submit(ctx context.Context, name, email, message string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"name":    strings.TrimSpace(name),
		"email":   strings.TrimSpace(email),
		"message": strings.TrimSpace(message),
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var body response
	_ = json.NewDecoder(res.Body).Decode(&body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", &ServerError{
			StatusCode: res.StatusCode,
			Code:       body.Error,
			Message:    body.Message,
			Fields:     mapDetails(body.Details),
		}
	}
	return body.Message, nil
}

// mapDetails attributes server validation messages back to fields by keyword:
// a detail mentioning "name"/"email"/"message" belongs to that field.
func mapDetails(details []string) FieldErrors {
	if len(details) == 0 {
		return nil
	}
	errs := FieldErrors{}
	for _, d := range details {
		lower := strings.ToLower(d)
		switch {
		case strings.Contains(lower, "name"):
			errs["name"] = d
		case strings.Contains(lower, "email"):
			errs["email"] = d
		case strings.Contains(lower, "message"):
			errs["message"] = d
		}
	}
	return errs
}
