package tickets

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/skyway-app/skyway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Add(ctx context.Context, ticket *domain.Ticket) error {
	args := m.Called(ctx, ticket)
	return args.Error(0)
}

func (m *MockTicketRepository) AddAll(ctx context.Context, tickets []domain.Ticket) error {
	args := m.Called(ctx, tickets)
	return args.Error(0)
}

func (m *MockTicketRepository) Update(ctx context.Context, id int64, ticket domain.Ticket) (*domain.Ticket, error) {
	args := m.Called(ctx, id, ticket)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) Remove(ctx context.Context, id int64) (*domain.Ticket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ticket), args.Error(1)
}

func (m *MockTicketRepository) FlightsForCustomerUser(ctx context.Context, userID int64) ([]domain.Flight, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Add(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) AddAll(ctx context.Context, customers []domain.Customer) error {
	args := m.Called(ctx, customers)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, id int64, customer domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, id, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Remove(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Customer, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Add(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) AddAll(ctx context.Context, users []domain.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, id, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Remove(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ResolveLogin(ctx context.Context, username, password string) (*domain.LoginIdentity, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoginIdentity), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

func newTestService(tickets *MockTicketRepository, customers *MockCustomerRepository, users *MockUserRepository, producer *MockProducer) *TicketService {
	return &TicketService{
		tickets:     tickets,
		customers:   customers,
		users:       users,
		producer:    producer,
		ticketTopic: "ticket_topic",
		log:         zap.NewNop().Sugar(),
	}
}

func TestTicketService_Purchase_Success(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockCustomers := &MockCustomerRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockTickets, mockCustomers, mockUsers, mockProducer)

	ctx := context.Background()
	customer := &domain.Customer{ID: 7, FirstName: "Alice", LastName: "Levi", UserID: 3}

	mockCustomers.On("GetByUserID", ctx, int64(3)).Return(customer, nil).Once()
	mockTickets.On("Add", ctx, mock.AnythingOfType("*domain.Ticket")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Ticket).ID = 99
		}).Return(nil).Once()
	mockUsers.On("GetByID", ctx, int64(3)).
		Return(&domain.User{ID: 3, Email: "alice@example.com"}, nil).Once()
	mockProducer.On("Publish", ctx, "ticket_topic", "99", mock.Anything).Return(nil).Once()

	ticket, err := service.Purchase(ctx, 3, 4)

	assert.NoError(t, err)
	assert.NotNil(t, ticket)
	assert.Equal(t, int64(99), ticket.ID)
	assert.Equal(t, int64(4), ticket.FlightID)
	assert.Equal(t, int64(7), ticket.CustomerID)

	mockTickets.AssertExpectations(t)
	mockCustomers.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

func TestTicketService_Purchase_NoCustomerProfile(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockCustomers := &MockCustomerRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockTickets, mockCustomers, mockUsers, mockProducer)

	ctx := context.Background()
	mockCustomers.On("GetByUserID", ctx, int64(3)).Return(nil, domain.ErrNotFound).Once()

	ticket, err := service.Purchase(ctx, 3, 4)

	assert.Error(t, err)
	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mockTickets.AssertNotCalled(t, "Add")
	mockProducer.AssertNotCalled(t, "Publish")
}

func TestTicketService_Purchase_SoldOut(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockCustomers := &MockCustomerRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockTickets, mockCustomers, mockUsers, mockProducer)

	ctx := context.Background()
	customer := &domain.Customer{ID: 7, UserID: 3}
	soldOut := fmt.Errorf("%w: flight 4 has no remaining tickets", domain.ErrConstraintViolation)

	mockCustomers.On("GetByUserID", ctx, int64(3)).Return(customer, nil).Once()
	mockTickets.On("Add", ctx, mock.AnythingOfType("*domain.Ticket")).Return(soldOut).Once()

	ticket, err := service.Purchase(ctx, 3, 4)

	assert.Error(t, err)
	assert.Nil(t, ticket)
	assert.ErrorIs(t, err, domain.ErrConstraintViolation)

	mockProducer.AssertNotCalled(t, "Publish")
}

func TestTicketService_Purchase_PublishFailureDoesNotFailSale(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockCustomers := &MockCustomerRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockTickets, mockCustomers, mockUsers, mockProducer)

	ctx := context.Background()
	customer := &domain.Customer{ID: 7, UserID: 3}

	mockCustomers.On("GetByUserID", ctx, int64(3)).Return(customer, nil).Once()
	mockTickets.On("Add", ctx, mock.AnythingOfType("*domain.Ticket")).Return(nil).Once()
	mockUsers.On("GetByID", ctx, int64(3)).Return(nil, domain.ErrNotFound).Once()
	mockProducer.On("Publish", ctx, "ticket_topic", mock.Anything, mock.Anything).
		Return(errors.New("kafka down")).Once()

	ticket, err := service.Purchase(ctx, 3, 4)

	assert.NoError(t, err)
	assert.NotNil(t, ticket)
	mockProducer.AssertExpectations(t)
}

func TestTicketService_Purchase_WithNotificationsTopic(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockCustomers := &MockCustomerRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := NewTicketService(mockTickets, mockCustomers, mockUsers, mockProducer,
		"ticket_topic", zap.NewNop().Sugar(), WithNotificationsTopic("notifications_topic"))

	ctx := context.Background()
	customer := &domain.Customer{ID: 7, UserID: 3}

	mockCustomers.On("GetByUserID", ctx, int64(3)).Return(customer, nil).Once()
	mockTickets.On("Add", ctx, mock.AnythingOfType("*domain.Ticket")).Return(nil).Once()
	mockUsers.On("GetByID", ctx, int64(3)).
		Return(&domain.User{ID: 3, Email: "alice@example.com"}, nil).Once()
	mockProducer.On("Publish", ctx, "ticket_topic", mock.Anything, mock.Anything).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications_topic", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := service.Purchase(ctx, 3, 4)

	assert.NoError(t, err)
	mockProducer.AssertExpectations(t)
}

func TestTicketService_Cancel_Success(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockCustomers := &MockCustomerRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockTickets, mockCustomers, mockUsers, mockProducer)

	ctx := context.Background()
	customer := &domain.Customer{ID: 7, UserID: 3}
	ticket := &domain.Ticket{ID: 99, FlightID: 4, CustomerID: 7}

	mockCustomers.On("GetByUserID", ctx, int64(3)).Return(customer, nil).Once()
	mockTickets.On("GetByID", ctx, int64(99)).Return(ticket, nil).Once()
	mockTickets.On("Remove", ctx, int64(99)).Return(ticket, nil).Once()
	mockUsers.On("GetByID", ctx, int64(3)).
		Return(&domain.User{ID: 3, Email: "alice@example.com"}, nil).Once()
	mockProducer.On("Publish", ctx, "ticket_topic", "99", mock.Anything).Return(nil).Once()

	cancelled, err := service.Cancel(ctx, 3, 99)

	assert.NoError(t, err)
	assert.Equal(t, ticket, cancelled)

	mockTickets.AssertExpectations(t)
	mockProducer.AssertExpectations(t)
}

// A ticket held by another customer must look like it does not exist.
func TestTicketService_Cancel_ForeignTicket(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockCustomers := &MockCustomerRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockTickets, mockCustomers, mockUsers, mockProducer)

	ctx := context.Background()
	customer := &domain.Customer{ID: 7, UserID: 3}
	foreign := &domain.Ticket{ID: 99, FlightID: 4, CustomerID: 8}

	mockCustomers.On("GetByUserID", ctx, int64(3)).Return(customer, nil).Once()
	mockTickets.On("GetByID", ctx, int64(99)).Return(foreign, nil).Once()

	cancelled, err := service.Cancel(ctx, 3, 99)

	assert.Nil(t, cancelled)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mockTickets.AssertNotCalled(t, "Remove")
	mockProducer.AssertNotCalled(t, "Publish")
}

func TestTicketService_Cancel_TicketNotFound(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockCustomers := &MockCustomerRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockTickets, mockCustomers, mockUsers, mockProducer)

	ctx := context.Background()
	customer := &domain.Customer{ID: 7, UserID: 3}

	mockCustomers.On("GetByUserID", ctx, int64(3)).Return(customer, nil).Once()
	mockTickets.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrNotFound).Once()

	cancelled, err := service.Cancel(ctx, 3, 99)

	assert.Nil(t, cancelled)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockTickets.AssertNotCalled(t, "Remove")
}

func TestTicketService_MyFlights(t *testing.T) {
	mockTickets := &MockTicketRepository{}
	mockCustomers := &MockCustomerRepository{}
	mockUsers := &MockUserRepository{}
	mockProducer := &MockProducer{}
	service := newTestService(mockTickets, mockCustomers, mockUsers, mockProducer)

	ctx := context.Background()
	departure := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	flights := []domain.Flight{
		{ID: 4, AirlineCompanyID: 1, OriginCountryID: 2, DestinationCountryID: 3,
			DepartureTime: departure, LandingTime: departure.Add(4 * time.Hour), RemainingTickets: 10},
	}

	mockTickets.On("FlightsForCustomerUser", ctx, int64(3)).Return(flights, nil).Once()

	result, err := service.MyFlights(ctx, 3)

	assert.NoError(t, err)
	assert.Equal(t, flights, result)
	mockTickets.AssertExpectations(t)
}

func TestTicketService_Publish_NoProducer(t *testing.T) {
	service := &TicketService{log: zap.NewNop().Sugar()}

	// must not panic without a producer or topic
	service.publish(context.Background(), "ticket_issued", &domain.Ticket{ID: 1}, 3)
}
