package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Adbhut07/NightShift/internal/domain"
)

type RegistrationSvc struct {
	participants ParticipantStore
}

func NewRegistrationSvc(participants ParticipantStore) *RegistrationSvc {
	return &RegistrationSvc{participants: participants}
}

// Register creates a participant. Duplicates on (name, houseNo) surface as
// domain.ErrParticipantExists.
func (s *RegistrationSvc) Register(ctx context.Context, name, houseNo, block, mobileNo string) (*domain.Participant, error) {
	name = strings.TrimSpace(name)
	houseNo = strings.TrimSpace(houseNo)
	if name == "" || houseNo == "" {
		return nil, errors.New("name and house number are required")
	}
	p := &domain.Participant{
		Name:     name,
		HouseNo:  houseNo,
		Block:    strings.TrimSpace(block),
		MobileNo: strings.TrimSpace(mobileNo),
	}
	if err := s.participants.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
