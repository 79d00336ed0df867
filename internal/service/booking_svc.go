package service

import (
	"context"

	"github.com/Adbhut07/NightShift/internal/domain"
)

// ReservationStore is the authoritative booking set. TransferBooking must be
// its only mutation path and must run check-and-commit atomically.
type ReservationStore interface {
	CurrentBooking(ctx context.Context, participantID string) (*domain.Booking, error)
	Occupancy(ctx context.Context, slot domain.Slot) ([]domain.Booking, error)
	TransferBooking(ctx context.Context, participantID string, slot domain.Slot) (*domain.Transfer, error)
}

type ParticipantStore interface {
	Create(ctx context.Context, p *domain.Participant) error
	ByID(ctx context.Context, id string) (*domain.Participant, error)
}

type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

type BookingSvc struct {
	store        ReservationStore
	participants ParticipantStore
	shifts       domain.ShiftSet
	pub          EventPublisher
}

// NewBookingSvc wires the engine. pub may be nil when no broker is configured.
func NewBookingSvc(store ReservationStore, participants ParticipantStore, shifts domain.ShiftSet, pub EventPublisher) *BookingSvc {
	return &BookingSvc{store: store, participants: participants, shifts: shifts, pub: pub}
}

// RequestSlot validates the request and delegates the whole admission decision
// to the store's atomic transfer. There is deliberately no occupancy read
// here: deciding on a value read outside the transaction is the lost-update
// race this engine exists to prevent.
func (s *BookingSvc) RequestSlot(ctx context.Context, participantID, dateISO, shift string) (*domain.Transfer, error) {
	slot, err := domain.ParseSlot(dateISO, shift)
	if err != nil {
		return nil, err
	}
	if !s.shifts.Contains(slot.Shift) {
		return nil, domain.ErrUnknownShift
	}
	p, err := s.participants.ByID(ctx, participantID)
	if err != nil {
		return nil, err
	}

	tr, err := s.store.TransferBooking(ctx, p.ID, slot)
	if err != nil {
		return nil, err
	}

	if s.pub != nil {
		evt := map[string]any{
			"event_id":       tr.Booking.ID,
			"participant_id": p.ID,
			"date":           slot.Date.Format("2006-01-02"),
			"shift":          slot.Shift,
		}
		if tr.Previous != nil {
			evt["previous_date"] = tr.Previous.SlotDate.Format("2006-01-02")
			evt["previous_shift"] = tr.Previous.Shift
		}
		_ = s.pub.PublishJSON(ctx, "reservation.selected", evt)
	}
	return tr, nil
}

// CurrentBooking returns the participant's active booking, or nil.
func (s *BookingSvc) CurrentBooking(ctx context.Context, participantID string) (*domain.Booking, error) {
	if _, err := s.participants.ByID(ctx, participantID); err != nil {
		return nil, err
	}
	return s.store.CurrentBooking(ctx, participantID)
}

func (s *BookingSvc) Occupancy(ctx context.Context, dateISO, shift string) ([]domain.Booking, error) {
	slot, err := domain.ParseSlot(dateISO, shift)
	if err != nil {
		return nil, err
	}
	if !s.shifts.Contains(slot.Shift) {
		return nil, domain.ErrUnknownShift
	}
	return s.store.Occupancy(ctx, slot)
}
