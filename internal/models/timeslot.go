package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot is one contiguous start–end pair within a single date.
type Slot struct {
	StartTime string
	EndTime   string
}

// ParseHour extracts the whole-hour component of an "HH:MM"-like time
// string. Minutes are truncated: "09:30" compares equal to "09:00". Bare
// hours ("9", "14") are accepted as well, which is what the comma-separated
// selected_times format produces.
func ParseHour(t string) (int, error) {
	s := strings.TrimSpace(t)
	if idx := strings.Index(s, ":"); idx >= 0 {
		s = s[:idx]
	}
	h, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", t)
	}
	if h < 0 || h > 24 {
		return 0, fmt.Errorf("hour out of range in %q", t)
	}
	return h, nil
}

// ParseSelectedTimes splits a "09-10,10-11" style list into slots. Each
// element must contain exactly one start and one end.
func ParseSelectedTimes(selected string) ([]Slot, error) {
	var slots []Slot
	for _, pair := range strings.Split(selected, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.Split(pair, "-")
		if len(parts) != 2 {
			return nil, fmt.Errorf("malformed time slot %q", pair)
		}
		slots = append(slots, Slot{
			StartTime: strings.TrimSpace(parts[0]),
			EndTime:   strings.TrimSpace(parts[1]),
		})
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("no time slots in %q", selected)
	}
	return slots, nil
}

// Overlaps reports whether the requested range [nStart, nEnd) collides with
// an existing booking range [bStart, bEnd), all at whole-hour resolution.
// A conflict exists when the new start falls inside the existing range, the
// new end falls inside it, or the new range fully contains it. Touching
// endpoints (10:00 end against 10:00 start) do not conflict.
func Overlaps(bStart, bEnd, nStart, nEnd int) bool {
	if bStart <= nStart && nStart < bEnd {
		return true
	}
	if bStart < nEnd && nEnd <= bEnd {
		return true
	}
	if nStart <= bStart && nEnd >= bEnd {
		return true
	}
	return false
}

// FirstConflict scans existing bookings for one that blocks the requested
// range. Bookings whose status is not blocking (cancelled, completed) are
// skipped. Returns the first conflicting booking, or nil.
func FirstConflict(existing []Booking, startTime, endTime string) (*Booking, error) {
	nStart, err := ParseHour(startTime)
	if err != nil {
		return nil, err
	}
	nEnd, err := ParseHour(endTime)
	if err != nil {
		return nil, err
	}

	for i := range existing {
		b := &existing[i]
		if !b.Status.Blocking() {
			continue
		}
		bStart, err := ParseHour(b.StartTime)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", b.ID, err)
		}
		bEnd, err := ParseHour(b.EndTime)
		if err != nil {
			return nil, fmt.Errorf("booking %d: %w", b.ID, err)
		}
		if Overlaps(bStart, bEnd, nStart, nEnd) {
			return b, nil
		}
	}

	return nil, nil
}

// SlotAmount computes the charge for one slot: hourly rate times whole
// hours, no proration for partial hours.
func SlotAmount(hourlyRate int64, startTime, endTime string) (int64, error) {
	start, err := ParseHour(startTime)
	if err != nil {
		return 0, err
	}
	end, err := ParseHour(endTime)
	if err != nil {
		return 0, err
	}
	if start >= end {
		return 0, fmt.Errorf("start time %q must be before end time %q", startTime, endTime)
	}
	return hourlyRate * int64(end-start), nil
}

// RelatedCourtSet unions both sides of every mapping row with the court
// itself and deduplicates. The result always contains courtID; iteration
// order is ascending by first appearance and carries no guarantee.
func RelatedCourtSet(courtID int64, mappings []CourtMapping) []int64 {
	seen := map[int64]bool{courtID: true}
	ids := []int64{courtID}

	for _, m := range mappings {
		if !seen[m.ParentCourtID] {
			seen[m.ParentCourtID] = true
			ids = append(ids, m.ParentCourtID)
		}
		if !seen[m.ChildCourtID] {
			seen[m.ChildCourtID] = true
			ids = append(ids, m.ChildCourtID)
		}
	}

	return ids
}
