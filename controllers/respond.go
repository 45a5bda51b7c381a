package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

// respondError maps the service error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is logged and reported as a generic 500; raw store
// errors never reach the client.
func respondError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not_found", "referenced row does not exist")
	case errors.Is(err, services.ErrConflict):
		utils.JSONError(c, http.StatusConflict, "conflict", "unique constraint violated")
	case errors.Is(err, services.ErrUnauthorized):
		utils.JSONError(c, http.StatusUnauthorized, "unauthorized", "invalid credentials or session")
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, "validation_error", ve.Code)
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal", "internal server error")
	}
}

// pathID parses the :id path parameter. A malformed value answers 400 and
// returns ok=false.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "bad_request", "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

// MissingID answers mutating calls that omit the required identifier, e.g.
// PUT /client without /{id}.
func MissingID(c *gin.Context) {
	utils.JSONError(c, http.StatusBadRequest, "bad_request", "id is required")
}
