package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Adbhut07/NightShift/internal/domain"
)

type ParticipantRepo struct{ db *gorm.DB }

func NewParticipantRepo(db *gorm.DB) *ParticipantRepo {
	return &ParticipantRepo{db: db}
}

func (r *ParticipantRepo) Migrate() error {
	return r.db.AutoMigrate(&domain.Participant{})
}

// Create inserts a participant. Duplicate (name, house_no) pairs are rejected
// by the unique index rather than a separate lookup, so two concurrent
// registrations cannot both pass the check.
func (r *ParticipantRepo) Create(ctx context.Context, p *domain.Participant) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrParticipantExists
		}
		return err
	}
	return nil
}

func (r *ParticipantRepo) ByID(ctx context.Context, id string) (*domain.Participant, error) {
	var p domain.Participant
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrParticipantNotFound
		}
		return nil, err
	}
	return &p, nil
}
