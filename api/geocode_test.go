package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestAddresses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Nguyen Hue, Hồ Chí Minh, Việt Nam", q.Get("q"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "5", q.Get("limit"))
		assert.Equal(t, "VN", q.Get("countrycodes"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"display_name": "Nguyen Hue, Quan 1", "lat": "10.7740", "lon": "106.7038"},
			{"display_name": "Nguyen Hue, Quan 9", "lat": "bad", "lon": "106.8"}
		]`))
	}))
	defer server.Close()

	client := NewClient()
	client.GeocodeURL = server.URL

	suggestions, err := client.SuggestAddresses(context.Background(), "Nguyen Hue", "Hồ Chí Minh")
	require.NoError(t, err)

	// Unparseable coordinates drop out of the suggestion list.
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Nguyen Hue, Quan 1", suggestions[0].DisplayName)
	assert.InDelta(t, 10.7740, suggestions[0].Lat, 0.0001)
	assert.InDelta(t, 106.7038, suggestions[0].Lon, 0.0001)
}

func TestSuggestAddressesEmptyQuery(t *testing.T) {
	client := NewClient()

	suggestions, err := client.SuggestAddresses(context.Background(), "   ", "")
	require.NoError(t, err)
	assert.Nil(t, suggestions)
}

func TestGeocodeNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient()
	client.GeocodeURL = server.URL

	_, _, err := client.Geocode(context.Background(), "nowhere", "")
	assert.Error(t, err)
}
