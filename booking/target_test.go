package booking

import (
	"testing"

	"github.com/NguyenMinhQuan0110/doantotnghiep-fe/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePitch(t *testing.T) {
	pitches := []api.Pitch{
		{ID: 1, Name: "Pitch 1", Type: "FIVE", PricePerHour: 200000},
		{ID: 2, Name: "Pitch 2", Type: "SEVEN", PricePerHour: 350000},
	}

	target, err := ResolvePitch(pitches, 2)
	require.NoError(t, err)
	assert.Equal(t, TargetPitch, target.Type)
	assert.Equal(t, 2, target.ID)
	assert.Equal(t, "Pitch 2", target.Name)
	assert.Equal(t, 350000, target.Price)
}

func TestResolvePitchNotFound(t *testing.T) {
	_, err := ResolvePitch([]api.Pitch{{ID: 1}}, 99)
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestResolveGroup(t *testing.T) {
	groups := []api.PitchGroup{
		{ID: 7, Name: "Full field", Price: 900000, PitchIDs: []int{1, 2}},
	}

	target, err := ResolveGroup(groups, 7)
	require.NoError(t, err)
	assert.Equal(t, TargetGroup, target.Type)
	assert.Equal(t, "Full field", target.Name)
	assert.Equal(t, 900000, target.Price)
}

func TestResolveGroupNotFound(t *testing.T) {
	_, err := ResolveGroup(nil, 7)
	assert.ErrorIs(t, err, ErrTargetNotFound)
}

func TestFindSlot(t *testing.T) {
	slots := []api.TimeSlot{{ID: 10}, {ID: 11, Price: 40000}}

	slot, ok := FindSlot(slots, 11)
	assert.True(t, ok)
	assert.Equal(t, 40000, slot.Price)

	_, ok = FindSlot(slots, 12)
	assert.False(t, ok)
}
