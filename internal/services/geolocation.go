package services

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/portfoliosite/backend/internal/models"
)

// Locator resolves an IP to best-effort geolocation data. A nil result means
// the lookup was unavailable; callers must treat that as a normal outcome and
// never fail a request over it.
type Locator interface {
	Lookup(ip string) *models.Geolocation
}

// ipAPIResponse is the ip-api.com JSON message (relevant subset).
type ipAPIResponse struct {
	Query       string  `json:"query"`
	Status      string  `json:"status"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Timezone    string  `json:"timezone"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
}

// IPAPILocator queries ip-api.com. The lookup is synchronous and bounded by
// the client timeout; every failure path returns nil.
type IPAPILocator struct {
	baseURL string
	client  *http.Client
}

func NewIPAPILocator(baseURL string) *IPAPILocator {
	return &IPAPILocator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

func (l *IPAPILocator) Lookup(ip string) *models.Geolocation {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil
	}
	// Reserved ranges have no public location; skip the network round trip.
	if parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() ||
		parsed.IsLinkLocalUnicast() || parsed.IsLinkLocalMulticast() {
		return nil
	}

	resp, err := l.client.Get(l.baseURL + "/" + ip)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var msg ipAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return nil
	}
	if msg.Status != "success" {
		return nil
	}

	loc := &models.Geolocation{}
	if msg.CountryCode != "" {
		loc.Country = &msg.CountryCode
	}
	if msg.City != "" {
		loc.City = &msg.City
	}
	if msg.Region != "" {
		loc.Region = &msg.Region
	}
	if msg.Timezone != "" {
		loc.Timezone = &msg.Timezone
	}
	loc.Latitude = &msg.Lat
	loc.Longitude = &msg.Lon
	return loc
}
