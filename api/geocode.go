package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// AddressSuggestion is one Nominatim hit for a free-typed address.
type AddressSuggestion struct {
	DisplayName string
	Lat         float64
	Lon         float64
}

// SuggestAddresses queries Nominatim for up to five matches, constrained
// to Vietnam and, when given, qualified with the chosen province name.
func (c *Client) SuggestAddresses(ctx context.Context, query, provinceName string) ([]AddressSuggestion, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	searchQuery := query
	if provinceName != "" {
		searchQuery += ", " + provinceName + ", Việt Nam"
	} else {
		searchQuery += ", Việt Nam"
	}

	q := url.Values{}
	q.Set("q", searchQuery)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("limit", "5")
	q.Set("countrycodes", "VN")
	urlStr := c.GeocodeURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("geocode failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var results []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}

	suggestions := make([]AddressSuggestion, 0, len(results))
	for _, result := range results {
		lat, err := strconv.ParseFloat(result.Lat, 64)
		if err != nil {
			continue
		}
		lon, err := strconv.ParseFloat(result.Lon, 64)
		if err != nil {
			continue
		}
		suggestions = append(suggestions, AddressSuggestion{
			DisplayName: result.DisplayName,
			Lat:         lat,
			Lon:         lon,
		})
	}
	return suggestions, nil
}

// Geocode resolves a free-typed address to the first suggestion's
// coordinates.
func (c *Client) Geocode(ctx context.Context, query, provinceName string) (float64, float64, error) {
	suggestions, err := c.SuggestAddresses(ctx, query, provinceName)
	if err != nil {
		return 0, 0, err
	}
	if len(suggestions) == 0 {
		return 0, 0, fmt.Errorf("no results for %q", query)
	}
	return suggestions[0].Lat, suggestions[0].Lon, nil
}
