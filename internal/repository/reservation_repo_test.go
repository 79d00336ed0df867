package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Adbhut07/NightShift/internal/domain"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "nightshift.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return gdb
}

func newTestRepo(t *testing.T) *ReservationRepo {
	t.Helper()
	repo := NewReservationRepo(newTestDB(t))
	if err := repo.Migrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return repo
}

func mustSlot(t *testing.T, date, shift string) domain.Slot {
	t.Helper()
	s, err := domain.ParseSlot(date, shift)
	if err != nil {
		t.Fatalf("parse slot: %v", err)
	}
	return s
}

func TestTransferBookingCreates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	slot := mustSlot(t, "2026-09-12", "morning")

	tr, err := repo.TransferBooking(ctx, "p1", slot)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if tr.Previous != nil {
		t.Fatal("first booking should have no previous")
	}
	if tr.Booking.ParticipantID != "p1" || tr.Booking.Shift != "morning" {
		t.Fatalf("unexpected booking %+v", tr.Booking)
	}

	b, err := repo.CurrentBooking(ctx, "p1")
	if err != nil {
		t.Fatalf("current booking: %v", err)
	}
	if b == nil || b.ID != tr.Booking.ID {
		t.Fatalf("current booking mismatch: %+v", b)
	}
}

func TestTransferBookingRejectsDuplicateWithoutMutation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	slot := mustSlot(t, "2026-09-12", "morning")

	first, err := repo.TransferBooking(ctx, "p1", slot)
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if _, err := repo.TransferBooking(ctx, "p1", slot); !errors.Is(err, domain.ErrAlreadyBooked) {
		t.Fatalf("want ErrAlreadyBooked, got %v", err)
	}

	occ, err := repo.Occupancy(ctx, slot)
	if err != nil {
		t.Fatalf("occupancy: %v", err)
	}
	if len(occ) != 1 || occ[0].ID != first.Booking.ID {
		t.Fatalf("duplicate request mutated the slot: %+v", occ)
	}
}

func TestTransferBookingEnforcesCapacity(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	slot := mustSlot(t, "2026-09-12", "evening")

	for _, p := range []string{"p1", "p2"} {
		if _, err := repo.TransferBooking(ctx, p, slot); err != nil {
			t.Fatalf("transfer %s: %v", p, err)
		}
	}
	if _, err := repo.TransferBooking(ctx, "p3", slot); !errors.Is(err, domain.ErrSlotFull) {
		t.Fatalf("want ErrSlotFull, got %v", err)
	}

	occ, _ := repo.Occupancy(ctx, slot)
	if len(occ) != 2 {
		t.Fatalf("rejection changed occupancy: %d", len(occ))
	}
	for _, b := range occ {
		if b.ParticipantID == "p3" {
			t.Fatal("rejected participant present in slot")
		}
	}
}

func TestTransferBookingVacatesPrevious(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	a := mustSlot(t, "2026-09-12", "morning")
	b := mustSlot(t, "2026-09-13", "evening")

	if _, err := repo.TransferBooking(ctx, "p1", a); err != nil {
		t.Fatalf("transfer to a: %v", err)
	}
	tr, err := repo.TransferBooking(ctx, "p1", b)
	if err != nil {
		t.Fatalf("transfer to b: %v", err)
	}
	if tr.Previous == nil || !tr.Previous.Slot().Date.Equal(a.Date) {
		t.Fatalf("previous booking not reported: %+v", tr.Previous)
	}

	occA, _ := repo.Occupancy(ctx, a)
	occB, _ := repo.Occupancy(ctx, b)
	if len(occA) != 0 {
		t.Fatalf("old slot not vacated: %d", len(occA))
	}
	if len(occB) != 1 || occB[0].ParticipantID != "p1" {
		t.Fatalf("new slot not occupied: %+v", occB)
	}

	cur, _ := repo.CurrentBooking(ctx, "p1")
	if cur == nil || !cur.Slot().Date.Equal(b.Date) {
		t.Fatalf("participant should hold exactly the new slot: %+v", cur)
	}
}

func TestCurrentBookingNilWhenUnbooked(t *testing.T) {
	repo := newTestRepo(t)
	b, err := repo.CurrentBooking(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("current booking: %v", err)
	}
	if b != nil {
		t.Fatalf("want nil booking, got %+v", b)
	}
}

func TestAppendHistoryIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	slot := mustSlot(t, "2026-09-12", "morning")

	h := domain.SlotHistory{
		EventID:       "evt-1",
		ParticipantID: "p1",
		SlotDate:      slot.Date,
		Shift:         slot.Shift,
	}
	if err := repo.AppendHistory(ctx, &h); err != nil {
		t.Fatalf("append: %v", err)
	}
	replay := domain.SlotHistory{
		EventID:       "evt-1",
		ParticipantID: "p1",
		SlotDate:      slot.Date,
		Shift:         slot.Shift,
	}
	if err := repo.AppendHistory(ctx, &replay); err != nil {
		t.Fatalf("replay append: %v", err)
	}

	rows, err := repo.HistoryForParticipant(ctx, "p1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("replayed event duplicated history: %d rows", len(rows))
	}
}
