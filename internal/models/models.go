package models

// ContactSubmission is a contact-form payload. It is never persisted: the
// handler builds it from the request body, validates it, hands it to the
// mailer and drops it.
type ContactSubmission struct {
	Name    string `json:"name" example:"Jane Doe"`
	Email   string `json:"email" example:"jane@example.com"`
	Message string `json:"message" example:"I would like to discuss a project."`
}

// Geolocation holds best-effort IP enrichment. Any field may be nil when the
// upstream lookup has no data for it.
type Geolocation struct {
	Country   *string  `json:"country"`
	City      *string  `json:"city"`
	Region    *string  `json:"region"`
	Timezone  *string  `json:"timezone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// VisitRecord is one entry of the in-memory visit log, keyed by client IP.
// Timestamps are epoch milliseconds. Geolocation fields are captured once, on
// the first request from the IP, and not refreshed afterwards.
type VisitRecord struct {
	IP        string   `json:"ip"`
	Country   *string  `json:"country"`
	City      *string  `json:"city"`
	Region    *string  `json:"region"`
	Timezone  *string  `json:"timezone"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	FirstSeen int64    `json:"firstSeen"`
	LastSeen  int64    `json:"lastSeen"`
	Hits      int      `json:"hits"`
	UserAgent string   `json:"userAgent,omitempty"`
}
