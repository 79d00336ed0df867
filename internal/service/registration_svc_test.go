package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Adbhut07/NightShift/internal/domain"
	"github.com/Adbhut07/NightShift/internal/repository"
)

func TestRegister(t *testing.T) {
	svc := NewRegistrationSvc(repository.NewMemoryParticipants())
	ctx := context.Background()

	p, err := svc.Register(ctx, " Asha ", "B-204", "B", "9999900000")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if p.ID == "" || p.Name != "Asha" {
		t.Fatalf("unexpected participant %+v", p)
	}

	if _, err := svc.Register(ctx, "Asha", "B-204", "C", ""); !errors.Is(err, domain.ErrParticipantExists) {
		t.Fatalf("want ErrParticipantExists, got %v", err)
	}
}

func TestRegisterRequiresIdentityFields(t *testing.T) {
	svc := NewRegistrationSvc(repository.NewMemoryParticipants())
	if _, err := svc.Register(context.Background(), "", "B-204", "", ""); err == nil {
		t.Fatal("want error for missing name")
	}
	if _, err := svc.Register(context.Background(), "Asha", "   ", "", ""); err == nil {
		t.Fatal("want error for missing house number")
	}
}
