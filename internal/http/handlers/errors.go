package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/domain"
)

// RespondDomainError maps domain errors to HTTP responses. Conflict, state
// and capacity failures all land on 400 with the domain message; only the
// internal branch hides its cause from the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error())
	case domain.IsValidation(err), domain.IsCapacity(err), domain.IsState(err), domain.IsConflict(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case domain.IsForbidden(err):
		RespondError(c, http.StatusForbidden, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, "terjadi kesalahan")
	}
}
