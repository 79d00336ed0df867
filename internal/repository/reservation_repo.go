package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Adbhut07/NightShift/internal/domain"
)

// transferRetries bounds optimistic restarts after serialization failures.
const transferRetries = 5

type ReservationRepo struct{ db *gorm.DB }

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

func (r *ReservationRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Booking{}, &domain.SlotHistory{})
}

func (r *ReservationRepo) CurrentBooking(ctx context.Context, participantID string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).First(&b, "participant_id = ?", participantID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *ReservationRepo) Occupancy(ctx context.Context, slot domain.Slot) ([]domain.Booking, error) {
	var out []domain.Booking
	err := r.db.WithContext(ctx).
		Where("slot_date = ? AND shift = ?", slot.Date, slot.Shift).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TransferBooking is the only mutation path for bookings. Capacity and
// duplicate checks run inside the same transaction as the write, so no two
// callers can both pass the capacity check against the same stale occupancy.
// Serialization aborts are retried in full; policy rejections are not.
func (r *ReservationRepo) TransferBooking(ctx context.Context, participantID string, slot domain.Slot) (*domain.Transfer, error) {
	var (
		out *domain.Transfer
		err error
	)
	for attempt := 0; attempt < transferRetries; attempt++ {
		out, err = r.tryTransfer(ctx, participantID, slot)
		if err == nil || !isSerializationFailure(err) {
			return out, err
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * 5 * time.Millisecond):
		}
	}
	return nil, fmt.Errorf("transfer booking for %s: %w", participantID, err)
}

func (r *ReservationRepo) tryTransfer(ctx context.Context, participantID string, slot domain.Slot) (*domain.Transfer, error) {
	var out domain.Transfer
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var occupants []domain.Booking
		if err := tx.
			Where("slot_date = ? AND shift = ?", slot.Date, slot.Shift).
			Find(&occupants).Error; err != nil {
			return err
		}
		for i := range occupants {
			if occupants[i].ParticipantID == participantID {
				return domain.ErrAlreadyBooked
			}
		}
		if len(occupants) >= domain.SlotCapacity {
			return domain.ErrSlotFull
		}

		// a new selection supersedes whatever booking the participant holds
		var prev domain.Booking
		switch err := tx.First(&prev, "participant_id = ?", participantID).Error; {
		case err == nil:
			if err := tx.Delete(&prev).Error; err != nil {
				return err
			}
			out.Previous = &prev
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}

		b := domain.Booking{
			ID:            uuid.NewString(),
			ParticipantID: participantID,
			SlotDate:      slot.Date,
			Shift:         slot.Shift,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		out.Booking = b
		return nil
	}, r.txOptions())
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// txOptions requests serializable isolation on Postgres. SQLite (tests, local
// runs) already executes transactions serializably and its driver rejects
// explicit isolation levels.
func (r *ReservationRepo) txOptions() *sql.TxOptions {
	if r.db.Dialector.Name() == "postgres" {
		return &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return &sql.TxOptions{}
}

// AppendHistory records one committed transfer, keyed by event id so a
// redelivered event is a no-op.
func (r *ReservationRepo) AppendHistory(ctx context.Context, h *domain.SlotHistory) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if h.RecordedAt.IsZero() {
		h.RecordedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}},
			DoNothing: true,
		}).
		Create(h).Error
}

func (r *ReservationRepo) HistoryForParticipant(ctx context.Context, participantID string) ([]domain.SlotHistory, error) {
	var out []domain.SlotHistory
	err := r.db.WithContext(ctx).
		Where("participant_id = ?", participantID).
		Order("recorded_at ASC").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
