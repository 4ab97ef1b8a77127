package email

import (
	"context"

	"github.com/skyway-app/skyway/internal/kafka"
	"go.uber.org/zap"
)

// Sender delivers ticket notifications. The current transport only logs;
// the worker feeds it decoded ticket events.
type Sender struct {
	log *zap.SugaredLogger
}

func NewSender(log *zap.SugaredLogger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	s.log.Infow("send ticket notification",
		"email", event.Email,
		"type", event.Type,
		"flight_id", event.FlightID,
		"ticket_id", event.TicketID,
	)
	return nil
}
