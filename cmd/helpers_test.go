package cmd

import (
	"testing"
	"time"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateInput(t *testing.T) {
	now := time.Now()

	today, err := parseDateInput("today")
	require.NoError(t, err)
	assert.Equal(t, now.Format("2006-01-02"), today.Format("2006-01-02"))

	tomorrow, err := parseDateInput("tomorrow")
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, 1).Format("2006-01-02"), tomorrow.Format("2006-01-02"))

	explicit, err := parseDateInput("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-15", explicit.Format("2006-01-02"))

	_, err = parseDateInput("15/09/2026")
	assert.Error(t, err)

	_, err = parseDateInput("")
	assert.Error(t, err)
}

func TestParseBookingDateRejectsPast(t *testing.T) {
	now := time.Date(2026, 9, 1, 14, 30, 0, 0, time.Local)

	// Today is bookable even late in the day.
	date, err := parseBookingDate("2026-09-01", now)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", date)

	date, err = parseBookingDate("today", now)
	require.NoError(t, err)
	assert.NotEmpty(t, date)

	_, err = parseBookingDate("2026-08-31", now)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "in the past")
}

func TestParseCoordinate(t *testing.T) {
	lat, lon, ok := parseCoordinate("10.762622, 106.660172")
	require.True(t, ok)
	assert.InDelta(t, 10.762622, lat, 0.000001)
	assert.InDelta(t, 106.660172, lon, 0.000001)

	_, _, ok = parseCoordinate("Nguyen Hue street")
	assert.False(t, ok)

	_, _, ok = parseCoordinate("10.7,abc")
	assert.False(t, ok)
}

func TestFormatVND(t *testing.T) {
	assert.Equal(t, "0 VND", formatVND(0))
	assert.Equal(t, "500 VND", formatVND(500))
	assert.Equal(t, "250,000 VND", formatVND(250000))
	assert.Equal(t, "1,500,000 VND", formatVND(1500000))
	assert.Equal(t, "-40,000 VND", formatVND(-40000))
}

func TestSlotLabels(t *testing.T) {
	assert.Equal(t, "18:00", slotLabel("18:00:00"))
	assert.Equal(t, "9:0", slotLabel("9:0"))

	slot := api.TimeSlot{StartTime: "18:00:00", EndTime: "19:30:00"}
	assert.Equal(t, "18:00-19:30", slotRange(slot))
}

func TestPitchTypeLabel(t *testing.T) {
	assert.Equal(t, "5-a-side", pitchTypeLabel("FIVE"))
	assert.Equal(t, "7-a-side", pitchTypeLabel("SEVEN"))
	assert.Equal(t, "11-a-side", pitchTypeLabel("ELEVEN"))
	assert.Equal(t, "FUTSAL", pitchTypeLabel("FUTSAL"))
}
