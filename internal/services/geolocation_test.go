package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPAPILocator_SuccessfulLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/203.0.113.7", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"query": "203.0.113.7",
			"status": "success",
			"country": "Germany",
			"countryCode": "DE",
			"region": "BE",
			"regionName": "Berlin",
			"city": "Berlin",
			"timezone": "Europe/Berlin",
			"lat": 52.52,
			"lon": 13.405
		}`))
	}))
	defer srv.Close()

	loc := NewIPAPILocator(srv.URL).Lookup("203.0.113.7")
	require.NotNil(t, loc)
	require.NotNil(t, loc.Country)
	assert.Equal(t, "DE", *loc.Country)
	require.NotNil(t, loc.City)
	assert.Equal(t, "Berlin", *loc.City)
	require.NotNil(t, loc.Timezone)
	assert.Equal(t, "Europe/Berlin", *loc.Timezone)
	require.NotNil(t, loc.Latitude)
	assert.InDelta(t, 52.52, *loc.Latitude, 0.001)
	require.NotNil(t, loc.Longitude)
	assert.InDelta(t, 13.405, *loc.Longitude, 0.001)
}

func TestIPAPILocator_FailedStatusIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"reserved range"}`))
	}))
	defer srv.Close()

	assert.Nil(t, NewIPAPILocator(srv.URL).Lookup("203.0.113.7"))
}

func TestIPAPILocator_SkipsReservedAndUnparseableAddresses(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()
	l := NewIPAPILocator(srv.URL)

	for _, ip := range []string{"unknown", "", "127.0.0.1", "192.168.1.10", "10.0.0.1", "::1", "not-an-ip"} {
		assert.Nil(t, l.Lookup(ip), "ip %q", ip)
	}
	// None of these may cost a network round trip.
	assert.Zero(t, calls)
}

func TestIPAPILocator_ServerDownIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	assert.Nil(t, NewIPAPILocator(srv.URL).Lookup("203.0.113.7"))
}

func TestIPAPILocator_MalformedBodyIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":`))
	}))
	defer srv.Close()

	assert.Nil(t, NewIPAPILocator(srv.URL).Lookup("203.0.113.7"))
}
