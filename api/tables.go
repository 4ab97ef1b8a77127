package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/skyway-app/skyway/internal/domain"
	"github.com/skyway-app/skyway/internal/repository"
)

// TableResource is the uniform access contract the routing layer speaks,
// one implementation per entity table.
type TableResource interface {
	GetAll(ctx context.Context) (interface{}, error)
	GetByID(ctx context.Context, id int64) (interface{}, error)
	Add(ctx context.Context, payload []byte) (interface{}, error)
	AddAll(ctx context.Context, payload []byte) error
	Update(ctx context.Context, id int64, payload []byte) (interface{}, error)
	Remove(ctx context.Context, id int64) (interface{}, error)
}

// row is the shape every entity type shares: payload validation plus the
// keep-the-original-id merge used by update.
type row[T any] interface {
	Validate() error
	WithID(id int64) T
}

type crudRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Add(ctx context.Context, row *T) error
	AddAll(ctx context.Context, rows []T) error
	Update(ctx context.Context, id int64, row T) (*T, error)
	Remove(ctx context.Context, id int64) (*T, error)
}

type resource[T row[T]] struct {
	repo crudRepository[T]
}

func newResource[T row[T]](repo crudRepository[T]) TableResource {
	return &resource[T]{repo: repo}
}

func (r *resource[T]) GetAll(ctx context.Context) (interface{}, error) {
	return r.repo.List(ctx)
}

func (r *resource[T]) GetByID(ctx context.Context, id int64) (interface{}, error) {
	rec, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *resource[T]) Add(ctx context.Context, payload []byte) (interface{}, error) {
	var rec T
	if err := decodePayload(payload, &rec); err != nil {
		return nil, err
	}
	if err := r.repo.Add(ctx, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *resource[T]) AddAll(ctx context.Context, payload []byte) error {
	var recs []T
	if err := decodePayload(payload, &recs); err != nil {
		return err
	}
	if len(recs) == 0 {
		return fmt.Errorf("%w: batch payload is empty", domain.ErrValidation)
	}
	return r.repo.AddAll(ctx, recs)
}

// Update decodes the payload into a fresh zero row, so fields absent
// from the payload revert to their defaults: a full replace, not a patch.
func (r *resource[T]) Update(ctx context.Context, id int64, payload []byte) (interface{}, error) {
	var rec T
	if err := decodePayload(payload, &rec); err != nil {
		return nil, err
	}
	updated, err := r.repo.Update(ctx, id, rec)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *resource[T]) Remove(ctx context.Context, id int64) (interface{}, error) {
	deleted, err := r.repo.Remove(ctx, id)
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func decodePayload(payload []byte, v interface{}) error {
	if len(bytes.TrimSpace(payload)) == 0 {
		return fmt.Errorf("%w: payload is empty", domain.ErrValidation)
	}
	if err := json.Unmarshal(payload, v); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// Repositories bundles the per-entity repositories the registry is
// built from.
type Repositories struct {
	Countries      repository.CountryRepository
	Roles          repository.UserRoleRepository
	Users          repository.UserRepository
	Administrators repository.AdministratorRepository
	Airlines       repository.AirlineCompanyRepository
	Customers      repository.CustomerRepository
	Flights        repository.FlightRepository
	Tickets        repository.TicketRepository
}

// TableRegistry is the closed mapping from external table names to
// resources, resolved once at startup. Unknown names are a not-found
// outcome, not a runtime lookup surprise.
type TableRegistry map[string]TableResource

func NewTableRegistry(repos Repositories) TableRegistry {
	return TableRegistry{
		"country":         newResource[domain.Country](repos.Countries),
		"user_role":       newResource[domain.UserRole](repos.Roles),
		"user":            newResource[domain.User](repos.Users),
		"administrator":   newResource[domain.Administrator](repos.Administrators),
		"airline_company": newResource[domain.AirlineCompany](repos.Airlines),
		"customer":        newResource[domain.Customer](repos.Customers),
		"flight":          newResource[domain.Flight](repos.Flights),
		"ticket":          newResource[domain.Ticket](repos.Tickets),
	}
}
