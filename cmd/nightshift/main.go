package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Adbhut07/NightShift/internal/consumer"
	"github.com/Adbhut07/NightShift/internal/domain"
	"github.com/Adbhut07/NightShift/internal/handlers"
	"github.com/Adbhut07/NightShift/internal/repository"
	"github.com/Adbhut07/NightShift/internal/service"
	"github.com/Adbhut07/NightShift/pkg/config"
	"github.com/Adbhut07/NightShift/pkg/db"
	"github.com/Adbhut07/NightShift/pkg/mq"
	"github.com/Adbhut07/NightShift/pkg/obs"
)

func must[T any](v T, err error) T {
	if err != nil {
		log.Fatal(err)
	}
	return v
}

func main() {
	_ = godotenv.Load(".env")
	cfg := must(config.Load())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracer := obs.InitTracer("nightshift")
	defer func() { _ = shutdownTracer(context.Background()) }()

	// DB
	gdb := db.Open(cfg.PGDSN)
	participants := repository.NewParticipantRepo(gdb)
	must(0, participants.Migrate())
	reservations := repository.NewReservationRepo(gdb)
	must(0, reservations.Migrate())

	// Publisher for reservation.* events
	pub := must(mq.NewPublisher(cfg.RabbitURL, cfg.ReservationExchange))
	defer pub.Close()

	// Audit trail consumer (history of committed transfers)
	auditCons := must(mq.NewConsumer(cfg.RabbitURL, cfg.ReservationExchange, cfg.AuditQueue, []string{"reservation.selected"}))
	defer auditCons.Close()
	must(0, consumer.NewAuditConsumer(reservations, auditCons).Run(ctx))
	log.Println("[nightshift] audit consumer started (reservation.selected)")

	shifts := domain.ParseShiftSet(cfg.Shifts)
	reg := service.NewRegistrationSvc(participants)
	booking := service.NewBookingSvc(reservations, participants, shifts, pub)

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: handlers.NewRouter(reg, booking),
	}
	go func() {
		log.Println("[nightshift] HTTP listening on", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	cancel()
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	_ = srv.Shutdown(shutdownCtx)
	log.Println("[nightshift] stopped")
}
