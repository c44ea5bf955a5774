package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerHeaderOnlyWhenLoggedIn(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]Complex{})
	}))
	defer server.Close()

	client := NewClient()
	client.BaseURL = server.URL

	_, err := client.GetAllComplexes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)

	client.AccessToken = "tok123"
	_, err = client.GetAllComplexes(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestSearchComplexesQueryParams(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/complexes/search", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("provinceId"))
		assert.Equal(t, "15", r.URL.Query().Get("districtId"))
		assert.Equal(t, "FIVE", r.URL.Query().Get("pitchType"))
		_ = json.NewEncoder(w).Encode([]Complex{{ID: 1, Name: "San A"}})
	}))
	defer server.Close()

	client := NewClient()
	client.BaseURL = server.URL

	complexes, err := client.SearchComplexes(context.Background(), ComplexFilter{
		ProvinceID: 2,
		DistrictID: 15,
		PitchType:  "FIVE",
	})
	require.NoError(t, err)
	require.Len(t, complexes, 1)
	assert.Equal(t, "San A", complexes[0].Name)
}

func TestSearchComplexesOmitsEmptyFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("provinceId"))
		assert.False(t, r.URL.Query().Has("districtId"))
		assert.False(t, r.URL.Query().Has("pitchType"))
		_ = json.NewEncoder(w).Encode([]Complex{})
	}))
	defer server.Close()

	client := NewClient()
	client.BaseURL = server.URL

	_, err := client.SearchComplexes(context.Background(), ComplexFilter{})
	require.NoError(t, err)
}

func TestErrorStatusIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "complex not found", http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient()
	client.BaseURL = server.URL

	_, err := client.GetComplexByID(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "complex not found")
}

func TestLoginStoresToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "an@example.com", body["email"])

		_ = json.NewEncoder(w).Encode(AuthResponse{Token: "tok456"})
	}))
	defer server.Close()

	client := NewClient()
	client.BaseURL = server.URL

	resp, err := client.Login(context.Background(), "an@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "tok456", resp.Token)
	assert.Equal(t, "tok456", client.AccessToken)
}

func TestLoginRejectsEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(AuthResponse{})
	}))
	defer server.Close()

	client := NewClient()
	client.BaseURL = server.URL

	_, err := client.Login(context.Background(), "an@example.com", "secret")
	assert.Error(t, err)
	assert.Empty(t, client.AccessToken)
}
