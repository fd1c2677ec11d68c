package config

import (
	"fmt"
	"os"
)

type AppConfig struct {
	Port string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// ContactTo is where submissions are delivered; falls back to SMTPUser.
	ContactTo string

	GeoAPIURL string

	RateLimitMax      int
	RateLimitWindowMS int

	// Development settings
	DevMode bool
}

func Load() AppConfig {
	cfg := AppConfig{}
	cfg.Port = getenv("PORT", "6001")

	cfg.SMTPHost = getenv("SMTP_HOST", "smtp.zoho.com")
	cfg.SMTPPort = getenvInt("SMTP_PORT", 465)
	cfg.SMTPUser = getenv("ZOHO_USER", "")
	cfg.SMTPPass = getenv("ZOHO_PASS", "")

	cfg.ContactTo = getenv("CONTACT_TO", cfg.SMTPUser)

	cfg.GeoAPIURL = getenv("GEO_API_URL", "http://ip-api.com/json")

	cfg.RateLimitMax = getenvInt("RATE_LIMIT_MAX", 5)
	cfg.RateLimitWindowMS = getenvInt("RATE_LIMIT_WINDOW_MS", 60000)

	cfg.DevMode = getenv("DEV_MODE", "false") == "true"

	return cfg
}

// MailConfigured reports whether the sender account is usable. Absence is not
// fatal at startup; the contact endpoint degrades per request instead.
func (c AppConfig) MailConfigured() bool {
	return c.SMTPUser != "" && c.SMTPPass != ""
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var n int
		_, _ = fmt.Sscanf(v, "%d", &n)
		if n != 0 {
			return n
		}
	}
	return def
}
