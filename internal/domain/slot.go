package domain

import (
	"fmt"
	"strings"
	"time"
)

// SlotCapacity is the number of residents a single (date, shift) slot admits.
const SlotCapacity = 2

// Slot identifies a bookable unit: one calendar day plus one shift label.
// Slots are derived keys; nothing exists for a slot until a booking references it.
type Slot struct {
	Date  time.Time
	Shift string
}

// NewSlot normalizes the date to midnight UTC so two slots on the same day
// compare equal regardless of the time-of-day the caller sent.
func NewSlot(date time.Time, shift string) Slot {
	d := date.UTC()
	return Slot{
		Date:  time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC),
		Shift: shift,
	}
}

// ParseSlot accepts RFC3339 timestamps (what browser clients send) or plain
// YYYY-MM-DD dates.
func ParseSlot(dateISO, shift string) (Slot, error) {
	shift = strings.TrimSpace(shift)
	if shift == "" {
		return Slot{}, fmt.Errorf("parse slot: %w", ErrUnknownShift)
	}
	t, err := time.Parse(time.RFC3339, dateISO)
	if err != nil {
		t, err = time.Parse("2006-01-02", dateISO)
	}
	if err != nil {
		return Slot{}, fmt.Errorf("parse slot date %q: %w", dateISO, ErrBadDate)
	}
	return NewSlot(t, shift), nil
}

func (s Slot) String() string {
	return s.Date.Format("2006-01-02") + "/" + s.Shift
}

// ShiftSet is the configured set of valid shift labels. The label set is
// deployment configuration, not a property of the booking rules.
type ShiftSet map[string]struct{}

// ParseShiftSet builds a ShiftSet from a comma-separated list, e.g.
// "morning,evening".
func ParseShiftSet(csv string) ShiftSet {
	set := ShiftSet{}
	for _, s := range strings.Split(csv, ",") {
		if s = strings.TrimSpace(s); s != "" {
			set[s] = struct{}{}
		}
	}
	return set
}

func (ss ShiftSet) Contains(shift string) bool {
	_, ok := ss[shift]
	return ok
}
