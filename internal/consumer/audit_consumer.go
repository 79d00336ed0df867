package consumer

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Adbhut07/NightShift/internal/domain"
	"github.com/Adbhut07/NightShift/internal/repository"
)

type ReservationSelected struct {
	EventID       string `json:"event_id"`
	ParticipantID string `json:"participant_id"`
	Date          string `json:"date"`
	Shift         string `json:"shift"`
	PreviousDate  string `json:"previous_date"`
	PreviousShift string `json:"previous_shift"`
}

// Source abstracts pkg/mq.Consumer for tests.
type Source interface {
	Deliveries(ctx context.Context) (<-chan amqp.Delivery, error)
}

// AuditConsumer appends one history row per committed transfer. Appends are
// keyed by event id, so redelivered messages are acked without effect.
type AuditConsumer struct {
	repo *repository.ReservationRepo
	src  Source
}

func NewAuditConsumer(repo *repository.ReservationRepo, src Source) *AuditConsumer {
	return &AuditConsumer{repo: repo, src: src}
}

func (a *AuditConsumer) Run(ctx context.Context) error {
	msgs, err := a.src.Deliveries(ctx)
	if err != nil {
		return err
	}
	go func() {
		for d := range msgs {
			switch d.RoutingKey {
			case "reservation.selected":
				var evt ReservationSelected
				if err := json.Unmarshal(d.Body, &evt); err != nil {
					log.Printf("[audit] unmarshal error: %v", err)
					_ = d.Nack(false, false)
					continue
				}
				if evt.EventID == "" || evt.ParticipantID == "" {
					log.Printf("[audit] invalid event payload")
					_ = d.Ack(false)
					continue
				}
				slotDate, err := time.Parse(time.DateOnly, evt.Date)
				if err != nil {
					log.Printf("[audit] bad date %q: %v", evt.Date, err)
					_ = d.Ack(false)
					continue
				}
				h := domain.SlotHistory{
					EventID:       evt.EventID,
					ParticipantID: evt.ParticipantID,
					SlotDate:      slotDate,
					Shift:         evt.Shift,
					PreviousDate:  evt.PreviousDate,
					PreviousShift: evt.PreviousShift,
				}
				if err := a.repo.AppendHistory(ctx, &h); err != nil {
					log.Printf("[audit] append error: %v", err)
					_ = d.Nack(false, true)
					continue
				}
				_ = d.Ack(false)
			default:
				// not ours
				_ = d.Ack(false)
			}
		}
	}()
	return nil
}
