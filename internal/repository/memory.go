package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Adbhut07/NightShift/internal/domain"
)

// MemoryStore keeps the booking set behind one mutex. The whole
// check-and-commit sequence of Transfer runs under the lock, which gives the
// same serializability the SQL store gets from its transaction. Occupancy is
// derived from the booking map, never counted separately.
type MemoryStore struct {
	mu       sync.Mutex
	bookings map[string]domain.Booking // keyed by participant id
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{bookings: make(map[string]domain.Booking)}
}

func (m *MemoryStore) CurrentBooking(_ context.Context, participantID string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.bookings[participantID]; ok {
		return &b, nil
	}
	return nil, nil
}

func (m *MemoryStore) Occupancy(_ context.Context, slot domain.Slot) ([]domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.occupantsLocked(slot), nil
}

func (m *MemoryStore) TransferBooking(_ context.Context, participantID string, slot domain.Slot) (*domain.Transfer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	occupants := m.occupantsLocked(slot)
	for i := range occupants {
		if occupants[i].ParticipantID == participantID {
			return nil, domain.ErrAlreadyBooked
		}
	}
	if len(occupants) >= domain.SlotCapacity {
		return nil, domain.ErrSlotFull
	}

	var out domain.Transfer
	if prev, ok := m.bookings[participantID]; ok {
		out.Previous = &prev
	}
	b := domain.Booking{
		ID:            uuid.NewString(),
		ParticipantID: participantID,
		SlotDate:      slot.Date,
		Shift:         slot.Shift,
		CreatedAt:     time.Now().UTC(),
	}
	m.bookings[participantID] = b
	out.Booking = b
	return &out, nil
}

func (m *MemoryStore) occupantsLocked(slot domain.Slot) []domain.Booking {
	var out []domain.Booking
	for _, b := range m.bookings {
		if b.SlotDate.Equal(slot.Date) && b.Shift == slot.Shift {
			out = append(out, b)
		}
	}
	return out
}

// MemoryParticipants mirrors ParticipantRepo for tests and broker-less local
// runs.
type MemoryParticipants struct {
	mu     sync.Mutex
	byID   map[string]domain.Participant
	byName map[string]string // "name|houseNo" -> id
}

func NewMemoryParticipants() *MemoryParticipants {
	return &MemoryParticipants{
		byID:   make(map[string]domain.Participant),
		byName: make(map[string]string),
	}
}

func (m *MemoryParticipants) Create(_ context.Context, p *domain.Participant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := p.Name + "|" + p.HouseNo
	if _, ok := m.byName[key]; ok {
		return domain.ErrParticipantExists
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	m.byID[p.ID] = *p
	m.byName[key] = p.ID
	return nil
}

func (m *MemoryParticipants) ByID(_ context.Context, id string) (*domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.byID[id]; ok {
		return &p, nil
	}
	return nil, domain.ErrParticipantNotFound
}
