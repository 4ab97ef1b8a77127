package catalog

import (
	"context"
	"time"

	"github.com/skyway-app/skyway/internal/domain"
	"github.com/skyway-app/skyway/internal/repository"
)

// CatalogUseCase exposes the flight and airline search surface. Every
// call is one store round trip; nothing is cached between calls.
type CatalogUseCase interface {
	ListFlights(ctx context.Context) ([]domain.Flight, error)
	SearchFlights(ctx context.Context, originCountryID, destinationCountryID int64, date time.Time) ([]domain.Flight, error)
	FlightsByOriginCountry(ctx context.Context, countryID int64) ([]domain.Flight, error)
	FlightsByDestinationCountry(ctx context.Context, countryID int64) ([]domain.Flight, error)
	FlightsByDepartureDate(ctx context.Context, date time.Time) ([]domain.Flight, error)
	FlightsByLandingDate(ctx context.Context, date time.Time) ([]domain.Flight, error)
	FlightsByAirline(ctx context.Context, airlineID int64) ([]domain.Flight, error)
	FlightsNearNow(ctx context.Context, countryID int64, direction domain.FlightDirection) ([]domain.Flight, error)
	ListAirlines(ctx context.Context) ([]domain.AirlineCompany, error)
	AirlinesByCountry(ctx context.Context, countryID int64) ([]domain.AirlineCompany, error)
	AirlineByUsername(ctx context.Context, username string) (*domain.AirlineCompany, error)
}

type CatalogService struct {
	flights       repository.FlightRepository
	airlines      repository.AirlineCompanyRepository
	nearNowWindow time.Duration
}

func NewCatalogService(flights repository.FlightRepository, airlines repository.AirlineCompanyRepository, nearNowWindow time.Duration) *CatalogService {
	if nearNowWindow <= 0 {
		nearNowWindow = 12 * time.Hour
	}
	return &CatalogService{flights: flights, airlines: airlines, nearNowWindow: nearNowWindow}
}

func (s *CatalogService) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	return s.flights.List(ctx)
}

func (s *CatalogService) SearchFlights(ctx context.Context, originCountryID, destinationCountryID int64, date time.Time) ([]domain.Flight, error) {
	return s.flights.ListByParameters(ctx, originCountryID, destinationCountryID, date)
}

func (s *CatalogService) FlightsByOriginCountry(ctx context.Context, countryID int64) ([]domain.Flight, error) {
	return s.flights.ListByOriginCountry(ctx, countryID)
}

func (s *CatalogService) FlightsByDestinationCountry(ctx context.Context, countryID int64) ([]domain.Flight, error) {
	return s.flights.ListByDestinationCountry(ctx, countryID)
}

func (s *CatalogService) FlightsByDepartureDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	return s.flights.ListByDepartureDate(ctx, date)
}

func (s *CatalogService) FlightsByLandingDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	return s.flights.ListByLandingDate(ctx, date)
}

func (s *CatalogService) FlightsByAirline(ctx context.Context, airlineID int64) ([]domain.Flight, error) {
	return s.flights.ListByAirline(ctx, airlineID)
}

func (s *CatalogService) FlightsNearNow(ctx context.Context, countryID int64, direction domain.FlightDirection) ([]domain.Flight, error) {
	return s.flights.ListNearNow(ctx, countryID, direction, s.nearNowWindow)
}

func (s *CatalogService) ListAirlines(ctx context.Context) ([]domain.AirlineCompany, error) {
	return s.airlines.List(ctx)
}

func (s *CatalogService) AirlinesByCountry(ctx context.Context, countryID int64) ([]domain.AirlineCompany, error) {
	return s.airlines.ListByCountry(ctx, countryID)
}

func (s *CatalogService) AirlineByUsername(ctx context.Context, username string) (*domain.AirlineCompany, error) {
	return s.airlines.GetByUsername(ctx, username)
}

var _ CatalogUseCase = (*CatalogService)(nil)
