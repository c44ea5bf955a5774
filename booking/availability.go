// Package booking carries the booking workflow: resolving availability
// across a complex, quoting a price for a target and slot, and the
// two-phase booking-then-payment submission.
package booking

import (
	"context"
	"fmt"
	"sync"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
)

// Target types accepted by the backend.
const (
	TargetPitch = "pitch"
	TargetGroup = "group"
)

// SlotKey is the composite key the availability map is indexed by,
// e.g. "pitch_3" or "group_1".
func SlotKey(targetType string, targetID int) string {
	return fmt.Sprintf("%s_%d", targetType, targetID)
}

type availabilityTarget struct {
	Type string
	ID   int
}

// ResolveAvailability fetches, for every pitch and group of a complex,
// the bookable slots on one date. One request is issued per target,
// concurrently. A failed target degrades to an empty slot list instead
// of failing the batch, so one bad target never blocks the others.
//
// The result always holds exactly len(pitches)+len(groups) keys.
func ResolveAvailability(ctx context.Context, client *api.Client, complexID int, date string, pitches []api.Pitch, groups []api.PitchGroup) map[string][]api.TimeSlot {
	targets := make([]availabilityTarget, 0, len(pitches)+len(groups))
	for _, pitch := range pitches {
		targets = append(targets, availabilityTarget{Type: TargetPitch, ID: pitch.ID})
	}
	for _, group := range groups {
		targets = append(targets, availabilityTarget{Type: TargetGroup, ID: group.ID})
	}

	slots := make(map[string][]api.TimeSlot, len(targets))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, target := range targets {
		wg.Add(1)
		go func(target availabilityTarget) {
			defer wg.Done()
			result, err := client.GetAvailableTimeSlots(ctx, complexID, target.Type, target.ID, date)
			if err != nil {
				result = []api.TimeSlot{}
			}
			if result == nil {
				result = []api.TimeSlot{}
			}
			mu.Lock()
			slots[SlotKey(target.Type, target.ID)] = result
			mu.Unlock()
		}(target)
	}
	wg.Wait()

	return slots
}
