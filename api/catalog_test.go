package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyway-app/skyway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCatalogUseCase struct {
	mock.Mock
}

func (m *MockCatalogUseCase) ListFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogUseCase) SearchFlights(ctx context.Context, originCountryID, destinationCountryID int64, date time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, originCountryID, destinationCountryID, date)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogUseCase) FlightsByOriginCountry(ctx context.Context, countryID int64) ([]domain.Flight, error) {
	args := m.Called(ctx, countryID)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogUseCase) FlightsByDestinationCountry(ctx context.Context, countryID int64) ([]domain.Flight, error) {
	args := m.Called(ctx, countryID)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogUseCase) FlightsByDepartureDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogUseCase) FlightsByLandingDate(ctx context.Context, date time.Time) ([]domain.Flight, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogUseCase) FlightsByAirline(ctx context.Context, airlineID int64) ([]domain.Flight, error) {
	args := m.Called(ctx, airlineID)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogUseCase) FlightsNearNow(ctx context.Context, countryID int64, direction domain.FlightDirection) ([]domain.Flight, error) {
	args := m.Called(ctx, countryID, direction)
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCatalogUseCase) ListAirlines(ctx context.Context) ([]domain.AirlineCompany, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.AirlineCompany), args.Error(1)
}

func (m *MockCatalogUseCase) AirlinesByCountry(ctx context.Context, countryID int64) ([]domain.AirlineCompany, error) {
	args := m.Called(ctx, countryID)
	return args.Get(0).([]domain.AirlineCompany), args.Error(1)
}

func (m *MockCatalogUseCase) AirlineByUsername(ctx context.Context, username string) (*domain.AirlineCompany, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AirlineCompany), args.Error(1)
}

func newCatalogRouter(service *MockCatalogUseCase) http.Handler {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewCatalogHandler(service).Register(router.Group("/"))
	return router
}

func TestCatalogHandler_ListFlights(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newCatalogRouter(mockService)

	flights := []domain.Flight{{ID: 1, AirlineCompanyID: 2}}
	mockService.On("ListFlights", mock.Anything).Return(flights, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/flights", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []domain.Flight
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, flights, response)
	mockService.AssertExpectations(t)
}

func TestCatalogHandler_SearchFlights(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newCatalogRouter(mockService)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mockService.On("SearchFlights", mock.Anything, int64(3), int64(4), date).
		Return([]domain.Flight{{ID: 1}}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/flights/search?origin_country_id=3&destination_country_id=4&date=2026-09-01", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestCatalogHandler_SearchFlights_BadDate(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newCatalogRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/flights/search?origin_country_id=3&destination_country_id=4&date=tomorrow", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "YYYY-MM-DD")
	mockService.AssertNotCalled(t, "SearchFlights")
}

func TestCatalogHandler_FlightsByDepartureDate(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newCatalogRouter(mockService)

	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	mockService.On("FlightsByDepartureDate", mock.Anything, date).
		Return([]domain.Flight{}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/flights/by-departure-date/2026-09-01", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestCatalogHandler_FlightsNearNow_DefaultsToArrivals(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newCatalogRouter(mockService)

	mockService.On("FlightsNearNow", mock.Anything, int64(3), domain.DirectionArrivals).
		Return([]domain.Flight{}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/flights/near-now/3", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestCatalogHandler_FlightsNearNow_Departures(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newCatalogRouter(mockService)

	mockService.On("FlightsNearNow", mock.Anything, int64(3), domain.DirectionDepartures).
		Return([]domain.Flight{}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/flights/near-now/3?direction=departures", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestCatalogHandler_FlightsNearNow_BadDirection(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newCatalogRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/flights/near-now/3?direction=sideways", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "FlightsNearNow")
}

func TestCatalogHandler_AirlineByUsername(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newCatalogRouter(mockService)

	airline := &domain.AirlineCompany{ID: 5, Name: "SkyHigh", CountryID: 3, UserID: 9}
	mockService.On("AirlineByUsername", mock.Anything, "skyhigh").Return(airline, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/airlines/by-username/skyhigh", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response domain.AirlineCompany
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, *airline, response)
	mockService.AssertExpectations(t)
}

func TestCatalogHandler_AirlineByUsername_NotFound(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newCatalogRouter(mockService)

	mockService.On("AirlineByUsername", mock.Anything, "ghost").Return(nil, domain.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/airlines/by-username/ghost", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_InvalidCountryID(t *testing.T) {
	mockService := &MockCatalogUseCase{}
	router := newCatalogRouter(mockService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/flights/by-origin/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "FlightsByOriginCountry")
}
