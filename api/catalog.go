package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skyway-app/skyway/internal/domain"
	"github.com/skyway-app/skyway/internal/service/catalog"
)

type CatalogHandler struct {
	service catalog.CatalogUseCase
}

func NewCatalogHandler(service catalog.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{service: service}
}

func (h *CatalogHandler) Register(router *gin.RouterGroup) {
	router.GET("/flights", h.listFlights)
	router.GET("/flights/search", h.searchFlights)
	router.GET("/flights/by-origin/:countryID", h.flightsByOrigin)
	router.GET("/flights/by-destination/:countryID", h.flightsByDestination)
	router.GET("/flights/by-departure-date/:date", h.flightsByDepartureDate)
	router.GET("/flights/by-landing-date/:date", h.flightsByLandingDate)
	router.GET("/flights/by-airline/:airlineID", h.flightsByAirline)
	router.GET("/flights/near-now/:countryID", h.flightsNearNow)
	router.GET("/airlines", h.listAirlines)
	router.GET("/airlines/by-country/:countryID", h.airlinesByCountry)
	router.GET("/airlines/by-username/:username", h.airlineByUsername)
}

func paramInt64(c *gin.Context, name string) (int64, bool) {
	v, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return v, true
}

func parseDate(c *gin.Context, raw string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be formatted as YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}

func (h *CatalogHandler) listFlights(c *gin.Context) {
	flights, err := h.service.ListFlights(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *CatalogHandler) searchFlights(c *gin.Context) {
	origin, err := strconv.ParseInt(c.Query("origin_country_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid origin_country_id"})
		return
	}
	destination, err := strconv.ParseInt(c.Query("destination_country_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid destination_country_id"})
		return
	}
	date, ok := parseDate(c, c.Query("date"))
	if !ok {
		return
	}

	flights, err := h.service.SearchFlights(c.Request.Context(), origin, destination, date)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *CatalogHandler) flightsByOrigin(c *gin.Context) {
	countryID, ok := paramInt64(c, "countryID")
	if !ok {
		return
	}
	flights, err := h.service.FlightsByOriginCountry(c.Request.Context(), countryID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *CatalogHandler) flightsByDestination(c *gin.Context) {
	countryID, ok := paramInt64(c, "countryID")
	if !ok {
		return
	}
	flights, err := h.service.FlightsByDestinationCountry(c.Request.Context(), countryID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *CatalogHandler) flightsByDepartureDate(c *gin.Context) {
	date, ok := parseDate(c, c.Param("date"))
	if !ok {
		return
	}
	flights, err := h.service.FlightsByDepartureDate(c.Request.Context(), date)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *CatalogHandler) flightsByLandingDate(c *gin.Context) {
	date, ok := parseDate(c, c.Param("date"))
	if !ok {
		return
	}
	flights, err := h.service.FlightsByLandingDate(c.Request.Context(), date)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *CatalogHandler) flightsByAirline(c *gin.Context) {
	airlineID, ok := paramInt64(c, "airlineID")
	if !ok {
		return
	}
	flights, err := h.service.FlightsByAirline(c.Request.Context(), airlineID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *CatalogHandler) flightsNearNow(c *gin.Context) {
	countryID, ok := paramInt64(c, "countryID")
	if !ok {
		return
	}
	direction, err := domain.ParseFlightDirection(c.DefaultQuery("direction", string(domain.DirectionArrivals)))
	if err != nil {
		respondErr(c, err)
		return
	}
	flights, err := h.service.FlightsNearNow(c.Request.Context(), countryID, direction)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *CatalogHandler) listAirlines(c *gin.Context) {
	airlines, err := h.service.ListAirlines(c.Request.Context())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, airlines)
}

func (h *CatalogHandler) airlinesByCountry(c *gin.Context) {
	countryID, ok := paramInt64(c, "countryID")
	if !ok {
		return
	}
	airlines, err := h.service.AirlinesByCountry(c.Request.Context(), countryID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, airlines)
}

func (h *CatalogHandler) airlineByUsername(c *gin.Context) {
	airline, err := h.service.AirlineByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, airline)
}
