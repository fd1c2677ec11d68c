package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SMTP_HOST", "SMTP_PORT", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW_MS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "6001", cfg.Port)
	assert.Equal(t, "smtp.zoho.com", cfg.SMTPHost)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, 60000, cfg.RateLimitWindowMS)
}

func TestLoad_ContactToFallsBackToSender(t *testing.T) {
	t.Setenv("ZOHO_USER", "owner@example.com")
	t.Setenv("CONTACT_TO", "")

	cfg := Load()
	assert.Equal(t, "owner@example.com", cfg.ContactTo)
}

func TestMailConfigured(t *testing.T) {
	assert.False(t, AppConfig{}.MailConfigured())
	assert.False(t, AppConfig{SMTPUser: "owner@example.com"}.MailConfigured())
	assert.True(t, AppConfig{SMTPUser: "owner@example.com", SMTPPass: "secret"}.MailConfigured())
}
