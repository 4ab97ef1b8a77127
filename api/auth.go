package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyway-app/skyway/internal/service/auth"
)

const sessionTokenHeader = "X-Session-Token"

type AuthHandler struct {
	service auth.AuthUseCase
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(service auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(router *gin.RouterGroup) {
	router.POST("/login", h.login)
	router.POST("/logout", h.logout)
}

func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) logout(c *gin.Context) {
	token := c.GetHeader(sessionTokenHeader)
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session token"})
		return
	}
	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		respondErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
