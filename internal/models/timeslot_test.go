package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHour(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"09:00", 9, true},
		{"09:30", 9, true}, // minutes are truncated
		{"9", 9, true},
		{"14", 14, true},
		{" 10:00 ", 10, true},
		{"0", 0, true},
		{"24", 24, true},
		{"25", 0, false},
		{"-1", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, err := ParseHour(tc.in)
		if tc.ok {
			require.NoError(t, err, "input %q", tc.in)
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		} else {
			assert.Error(t, err, "input %q", tc.in)
		}
	}
}

func TestParseSelectedTimes(t *testing.T) {
	slots, err := ParseSelectedTimes("09-10,10-11")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, Slot{StartTime: "09", EndTime: "10"}, slots[0])
	assert.Equal(t, Slot{StartTime: "10", EndTime: "11"}, slots[1])

	slots, err = ParseSelectedTimes(" 14-15 ")
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, Slot{StartTime: "14", EndTime: "15"}, slots[0])

	_, err = ParseSelectedTimes("")
	assert.Error(t, err)

	_, err = ParseSelectedTimes("9-10-11")
	assert.Error(t, err)

	_, err = ParseSelectedTimes(",,,")
	assert.Error(t, err)
}

func TestOverlaps(t *testing.T) {
	// existing booking 10-12
	cases := []struct {
		name         string
		nStart, nEnd int
		want         bool
	}{
		{"identical range", 10, 12, true},
		{"new start inside", 11, 13, true},
		{"new end inside", 9, 11, true},
		{"new contains existing", 9, 13, true},
		{"existing contains new", 10, 11, true},
		{"adjacent before", 8, 10, false},
		{"adjacent after", 12, 14, false},
		{"disjoint before", 7, 9, false},
		{"disjoint after", 13, 15, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(10, 12, tc.nStart, tc.nEnd))
		})
	}
}

func TestFirstConflict(t *testing.T) {
	existing := []Booking{
		{ID: 1, StartTime: "09:00", EndTime: "10:00", Status: BookingConfirmed},
		{ID: 2, StartTime: "10:00", EndTime: "12:00", Status: BookingPending},
		{ID: 3, StartTime: "14:00", EndTime: "16:00", Status: BookingCancelled},
	}

	conflict, err := FirstConflict(existing, "09:00", "10:00")
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(1), conflict.ID)

	// pending bookings block too
	conflict, err = FirstConflict(existing, "11:00", "13:00")
	require.NoError(t, err)
	require.NotNil(t, conflict)
	assert.Equal(t, int64(2), conflict.ID)

	// cancelled bookings do not block
	conflict, err = FirstConflict(existing, "14:00", "16:00")
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// adjacent slot is free
	conflict, err = FirstConflict(existing, "12:00", "13:00")
	require.NoError(t, err)
	assert.Nil(t, conflict)

	_, err = FirstConflict(existing, "bad", "10:00")
	assert.Error(t, err)
}

func TestFirstConflictTruncatesMinutes(t *testing.T) {
	existing := []Booking{
		{ID: 1, StartTime: "09:30", EndTime: "10:30", Status: BookingConfirmed},
	}

	// 09:30-10:30 occupies the 9-10 band, so a 09:00 request collides
	conflict, err := FirstConflict(existing, "09:00", "10:00")
	require.NoError(t, err)
	require.NotNil(t, conflict)

	// and the 10-11 band is considered free
	conflict, err = FirstConflict(existing, "10:00", "11:00")
	require.NoError(t, err)
	assert.Nil(t, conflict)
}

func TestSlotAmount(t *testing.T) {
	amount, err := SlotAmount(150000, "09:00", "11:00")
	require.NoError(t, err)
	assert.Equal(t, int64(300000), amount)

	amount, err = SlotAmount(150000, "9", "10")
	require.NoError(t, err)
	assert.Equal(t, int64(150000), amount)

	_, err = SlotAmount(150000, "11:00", "09:00")
	assert.Error(t, err)

	_, err = SlotAmount(150000, "10:00", "10:00")
	assert.Error(t, err)
}

func TestRelatedCourtSet(t *testing.T) {
	mappings := []CourtMapping{
		{ParentCourtID: 1, ChildCourtID: 2},
		{ParentCourtID: 1, ChildCourtID: 3},
	}

	// child court pulls in the parent and, through shared rows, nothing else
	set := RelatedCourtSet(2, []CourtMapping{{ParentCourtID: 1, ChildCourtID: 2}})
	assert.ElementsMatch(t, []int64{1, 2}, set)

	// parent court pulls in all children
	set = RelatedCourtSet(1, mappings)
	assert.ElementsMatch(t, []int64{1, 2, 3}, set)

	// no mappings: singleton set
	set = RelatedCourtSet(7, nil)
	assert.Equal(t, []int64{7}, set)

	// the court itself is always present
	set = RelatedCourtSet(3, mappings)
	assert.Contains(t, set, int64(3))
}
