package domain

import "time"

// Booking is the active association between one participant and one slot.
// The unique index on ParticipantID enforces single-active-booking per
// participant; the composite slot index serves occupancy queries without a
// table scan.
type Booking struct {
	ID            string    `gorm:"primaryKey"`
	ParticipantID string    `gorm:"uniqueIndex"`
	SlotDate      time.Time `gorm:"index:idx_slot_occupancy"`
	Shift         string    `gorm:"index:idx_slot_occupancy"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (b *Booking) Slot() Slot {
	return NewSlot(b.SlotDate, b.Shift)
}

// Transfer is the result of one committed slot selection: the booking that
// now holds, plus the booking it superseded, if any.
type Transfer struct {
	Booking  Booking
	Previous *Booking
}

// SlotHistory is an audit row appended per committed transfer. EventID is the
// dedup key so replayed events never produce duplicate rows.
type SlotHistory struct {
	ID            string `gorm:"primaryKey"`
	EventID       string `gorm:"uniqueIndex"`
	ParticipantID string `gorm:"index"`
	SlotDate      time.Time
	Shift         string
	PreviousDate  string
	PreviousShift string
	RecordedAt    time.Time
}
