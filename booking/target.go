package booking

import (
	"errors"
	"fmt"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"
)

// ErrTargetNotFound reports that the requested pitch or group id is not
// part of the complex's fetched lists.
var ErrTargetNotFound = errors.New("target not found")

// Target is the bookable unit a booking is placed against: a single
// pitch or a pitch group, flattened to what the workflow needs.
type Target struct {
	Type  string `json:"type"`
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// ResolvePitch finds pitchID among the complex's pitches.
func ResolvePitch(pitches []api.Pitch, pitchID int) (Target, error) {
	for _, pitch := range pitches {
		if pitch.ID == pitchID {
			return Target{
				Type:  TargetPitch,
				ID:    pitch.ID,
				Name:  pitch.Name,
				Price: pitch.PricePerHour,
			}, nil
		}
	}
	return Target{}, fmt.Errorf("pitch %d: %w", pitchID, ErrTargetNotFound)
}

// ResolveGroup finds groupID among the complex's pitch groups.
func ResolveGroup(groups []api.PitchGroup, groupID int) (Target, error) {
	for _, group := range groups {
		if group.ID == groupID {
			return Target{
				Type:  TargetGroup,
				ID:    group.ID,
				Name:  group.Name,
				Price: group.Price,
			}, nil
		}
	}
	return Target{}, fmt.Errorf("group %d: %w", groupID, ErrTargetNotFound)
}

// FindSlot picks the slot with the given id out of an availability list.
func FindSlot(slots []api.TimeSlot, slotID int) (api.TimeSlot, bool) {
	for _, slot := range slots {
		if slot.ID == slotID {
			return slot, true
		}
	}
	return api.TimeSlot{}, false
}
