// Package store holds the in-memory visit log. It is wholly volatile: records
// live for the process lifetime, there is no eviction, and a restart empties
// the store. The server owns one instance and hands it to the handlers, so
// tests can inject a fresh store instead of sharing a package singleton.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/portfoliosite/backend/internal/models"
)

type VisitStore struct {
	mu     sync.Mutex
	visits map[string]*models.VisitRecord

	now func() time.Time
}

func NewVisitStore() *VisitStore {
	return &VisitStore{
		visits: make(map[string]*models.VisitRecord),
		now:    time.Now,
	}
}

// Record upserts the entry for ip. On first sight it calls geo to enrich the
// record and captures the user agent; on repeat visits it only bumps the hit
// count and lastSeen, leaving the geolocation fields as first captured.
//
// The lookup runs outside the lock: a slow upstream must only cost the request
// that triggered it, not every visitor behind the same mutex. If two requests
// from a new IP race, the loser's lookup result is discarded and its request
// is counted as a repeat visit.
func (s *VisitStore) Record(ip, userAgent string, geo func() *models.Geolocation) {
	now := s.now().UnixMilli()

	s.mu.Lock()
	if rec, ok := s.visits[ip]; ok {
		rec.Hits++
		if now > rec.LastSeen {
			rec.LastSeen = now
		}
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	loc := geo()

	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.visits[ip]; ok {
		rec.Hits++
		if now > rec.LastSeen {
			rec.LastSeen = now
		}
		return
	}

	rec := &models.VisitRecord{
		IP:        ip,
		FirstSeen: now,
		LastSeen:  now,
		Hits:      1,
		UserAgent: userAgent,
	}
	if loc != nil {
		rec.Country = loc.Country
		rec.City = loc.City
		rec.Region = loc.Region
		rec.Timezone = loc.Timezone
		rec.Latitude = loc.Latitude
		rec.Longitude = loc.Longitude
	}
	s.visits[ip] = rec
}

// Snapshot returns copies of all records sorted by lastSeen descending.
func (s *VisitStore) Snapshot() []models.VisitRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.VisitRecord, 0, len(s.visits))
	for _, rec := range s.visits {
		out = append(out, *rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LastSeen > out[j].LastSeen
	})
	return out
}
