package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/storage"
)

func parseDateInput(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	now := time.Now()
	switch strings.ToLower(input) {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case "tomorrow":
		t := now.AddDate(0, 0, 1)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", input, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input)
	}
	return parsed, nil
}

// parseBookingDate additionally rejects dates before today: today is
// bookable, yesterday is not.
func parseBookingDate(input string, now time.Time) (string, error) {
	parsed, err := parseDateInput(input)
	if err != nil {
		return "", err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return "", fmt.Errorf("booking date %s is in the past", parsed.Format("2006-01-02"))
	}
	return parsed.Format("2006-01-02"), nil
}

func parseCoordinate(input string) (float64, float64, bool) {
	parts := strings.Split(input, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return lat, lon, true
}

func formatVND(amount int) string {
	digits := strconv.Itoa(amount)
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)
	value := strings.Join(groups, ",")
	if negative {
		value = "-" + value
	}
	return value + " VND"
}

// slotLabel trims HH:mm:ss to HH:mm for display.
func slotLabel(value string) string {
	if len(value) >= 5 {
		return value[:5]
	}
	return value
}

func slotRange(slot api.TimeSlot) string {
	return fmt.Sprintf("%s-%s", slotLabel(slot.StartTime), slotLabel(slot.EndTime))
}

func pitchTypeLabel(pitchType string) string {
	switch pitchType {
	case "FIVE":
		return "5-a-side"
	case "SEVEN":
		return "7-a-side"
	case "ELEVEN":
		return "11-a-side"
	}
	return pitchType
}

func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// requireSession loads the stored credentials, attaches the token and
// verifies it against /auth/me. A rejected token clears the stored
// credentials so the next attempt starts logged out.
func requireSession(ctx context.Context) (api.User, error) {
	creds, err := storage.LoadCredentials()
	if err != nil {
		return api.User{}, err
	}
	if creds == nil || creds.Token == "" {
		return api.User{}, fmt.Errorf("not logged in. Run 'datsan auth login' first")
	}
	client.AccessToken = creds.Token

	user, err := client.CurrentUser(ctx)
	if err != nil {
		client.AccessToken = ""
		_ = storage.ClearCredentials()
		return api.User{}, fmt.Errorf("session expired. Run 'datsan auth login' to re-authenticate")
	}
	return user, nil
}

// attachToken sets the stored token on the client without verifying it.
// Read-only commands use it so a stale token degrades at the server.
func attachToken() {
	creds, err := storage.LoadCredentials()
	if err != nil || creds == nil {
		return
	}
	client.AccessToken = creds.Token
}
