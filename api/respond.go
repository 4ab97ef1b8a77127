package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skyway-app/skyway/internal/domain"
	"github.com/skyway-app/skyway/internal/service/auth"
)

// statusFromErr translates the access-contract outcome into a transport
// status.
func statusFromErr(err error) int {
	switch {
	case errors.Is(err, auth.ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConstraintViolation):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondErr(c *gin.Context, err error) {
	c.JSON(statusFromErr(err), gin.H{"error": err.Error()})
}
