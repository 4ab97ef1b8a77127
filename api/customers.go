package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/skyway-app/skyway/internal/domain"
	"github.com/skyway-app/skyway/internal/service/auth"
	"github.com/skyway-app/skyway/internal/service/tickets"
)

// CustomerHandler serves the operations a logged-in customer may invoke
// against their own profile.
type CustomerHandler struct {
	auth    auth.AuthUseCase
	tickets tickets.TicketUseCase
}

type purchaseTicketRequest struct {
	FlightID int64 `json:"flight_id"`
}

func NewCustomerHandler(authService auth.AuthUseCase, ticketService tickets.TicketUseCase) *CustomerHandler {
	return &CustomerHandler{auth: authService, tickets: ticketService}
}

func (h *CustomerHandler) Register(router *gin.RouterGroup) {
	router.GET("/me/flights", h.myFlights)
	router.POST("/me/tickets", h.purchase)
	router.DELETE("/me/tickets/:id", h.cancel)
}

// session resolves the token header into a customer session, writing the
// failure response itself when the caller is not a customer.
func (h *CustomerHandler) session(c *gin.Context) (*domain.Session, bool) {
	token := c.GetHeader(sessionTokenHeader)
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing session token"})
		return nil, false
	}
	session, err := h.auth.Resolve(c.Request.Context(), token)
	if err != nil {
		respondErr(c, err)
		return nil, false
	}
	if session.Role != domain.RoleCustomer {
		c.JSON(http.StatusForbidden, gin.H{"error": "customer role required"})
		return nil, false
	}
	return session, true
}

func (h *CustomerHandler) myFlights(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	flights, err := h.tickets.MyFlights(c.Request.Context(), session.UserID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, flights)
}

func (h *CustomerHandler) purchase(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	var req purchaseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := h.tickets.Purchase(c.Request.Context(), session.UserID, req.FlightID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

func (h *CustomerHandler) cancel(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	ticketID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	cancelled, err := h.tickets.Cancel(c.Request.Context(), session.UserID, ticketID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
