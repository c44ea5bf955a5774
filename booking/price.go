package booking

import (
	"time"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
)

// Quote is the price breakdown shown before submitting a booking.
type Quote struct {
	TargetPrice int     `json:"targetPrice"`
	SlotPrice   int     `json:"slotPrice"`
	Total       int     `json:"total"`
	Hours       float64 `json:"hours"`
}

// ComputeQuote prices a booking of target for slot. The target price is
// charged once for the whole session regardless of slot length (the
// backend's pricePerHour field is flat per booking, see api.Pitch), so
// the total is a plain sum. Hours is informational only and never feeds
// into the total.
func ComputeQuote(target Target, slot api.TimeSlot) Quote {
	return Quote{
		TargetPrice: target.Price,
		SlotPrice:   slot.Price,
		Total:       target.Price + slot.Price,
		Hours:       HoursBetween(slot.StartTime, slot.EndTime),
	}
}

// HoursBetween returns the span between two HH:mm:ss clock values in
// hours, or 0 when either value does not parse.
func HoursBetween(startTime, endTime string) float64 {
	start, err := time.Parse("15:04:05", startTime)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04:05", endTime)
	if err != nil {
		return 0
	}
	return end.Sub(start).Hours()
}
