package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":3000"`
	// DB
	PGDSN string `envconfig:"PG_DSN" required:"true"`
	// RabbitMQ for publishing reservation events and feeding the audit trail
	RabbitURL           string `envconfig:"RABBIT_URL" required:"true"`
	ReservationExchange string `envconfig:"RESERVATION_EXCHANGE" default:"reservation.exchange"`
	AuditQueue          string `envconfig:"RESERVATION_AUDIT_QUEUE" default:"reservation.audit.q"`
	// Shift labels are deployment configuration; capacity per slot is not.
	Shifts string `envconfig:"SHIFTS" default:"morning,evening"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
