package tickets

import (
	"context"
	"fmt"
	"time"

	"github.com/skyway-app/skyway/internal/domain"
	"github.com/skyway-app/skyway/internal/kafka"
	"github.com/skyway-app/skyway/internal/repository"
	"go.uber.org/zap"
)

// TicketUseCase covers the ticket operations a logged-in customer may
// invoke, keyed by the user id carried in the session.
type TicketUseCase interface {
	Purchase(ctx context.Context, userID, flightID int64) (*domain.Ticket, error)
	Cancel(ctx context.Context, userID, ticketID int64) (*domain.Ticket, error)
	MyFlights(ctx context.Context, userID int64) ([]domain.Flight, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type TicketService struct {
	tickets            repository.TicketRepository
	customers          repository.CustomerRepository
	users              repository.UserRepository
	producer           Producer
	ticketTopic        string
	notificationsTopic string
	log                *zap.SugaredLogger
}

type TicketServiceOption func(*TicketService)

func WithNotificationsTopic(topic string) TicketServiceOption {
	return func(s *TicketService) {
		s.notificationsTopic = topic
	}
}

func NewTicketService(
	tickets repository.TicketRepository,
	customers repository.CustomerRepository,
	users repository.UserRepository,
	producer Producer,
	ticketTopic string,
	log *zap.SugaredLogger,
	opts ...TicketServiceOption,
) *TicketService {
	service := &TicketService{
		tickets:     tickets,
		customers:   customers,
		users:       users,
		producer:    producer,
		ticketTopic: ticketTopic,
		log:         log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *TicketService) Purchase(ctx context.Context, userID, flightID int64) (*domain.Ticket, error) {
	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer profile: %w", err)
	}

	ticket := &domain.Ticket{FlightID: flightID, CustomerID: customer.ID}
	if err := s.tickets.Add(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventTicketIssued, ticket, customer.UserID)
	return ticket, nil
}

func (s *TicketService) Cancel(ctx context.Context, userID, ticketID int64) (*domain.Ticket, error) {
	customer, err := s.customers.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("resolve customer profile: %w", err)
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.CustomerID != customer.ID {
		return nil, domain.ErrNotFound
	}

	cancelled, err := s.tickets.Remove(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.EventTicketCancelled, cancelled, customer.UserID)
	return cancelled, nil
}

func (s *TicketService) MyFlights(ctx context.Context, userID int64) ([]domain.Flight, error) {
	return s.tickets.FlightsForCustomerUser(ctx, userID)
}

// publish sends the lifecycle event to the ticket topic and, when
// configured, the notifications topic. Event delivery is best effort and
// never fails the sale.
func (s *TicketService) publish(ctx context.Context, eventType string, ticket *domain.Ticket, userID int64) {
	if s.producer == nil || s.ticketTopic == "" {
		return
	}

	email := ""
	if user, err := s.users.GetByID(ctx, userID); err == nil {
		email = user.Email
	}

	event := kafka.TicketEvent{
		Type:       eventType,
		TicketID:   ticket.ID,
		FlightID:   ticket.FlightID,
		CustomerID: ticket.CustomerID,
		Email:      email,
		OccurredAt: time.Now(),
	}
	key := fmt.Sprintf("%d", ticket.ID)
	if err := s.producer.Publish(ctx, s.ticketTopic, key, event); err != nil {
		s.log.Warnw("failed to publish ticket event", "type", eventType, "ticket_id", ticket.ID, "err", err)
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, key, event); err != nil {
			s.log.Warnw("failed to publish ticket notification", "type", eventType, "ticket_id", ticket.ID, "err", err)
		}
	}
}

var _ TicketUseCase = (*TicketService)(nil)
