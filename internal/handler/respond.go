package handler

import (
	"errors"
	"net/http"

	"github.com/cloud-wave-best-zizon/catalog-service/internal/domain"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/repository"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/service"
	"github.com/cloud-wave-best-zizon/catalog-service/internal/validate"
	"github.com/gin-gonic/gin"
)

// errorEnvelope maps the service error taxonomy onto the response envelope:
// validation and conflict are 400, missing records 404, everything else is a
// backend failure surfaced as 500 with the raw error text (internal tool).
func errorEnvelope(err error) domain.Envelope {
	switch {
	case errors.Is(err, service.ErrNoValidFields):
		return domain.Fail(http.StatusBadRequest, "No valid fields to update")
	case errors.Is(err, service.ErrInsufficientStock):
		return domain.Fail(http.StatusBadRequest, "Quantity is greater than current stock")
	case errors.Is(err, service.ErrProductMissing):
		return domain.Fail(http.StatusNotFound, "Product does not exist")
	case errors.Is(err, repository.ErrItemExists):
		return domain.Fail(http.StatusBadRequest, "Item already exists")
	case errors.Is(err, repository.ErrItemNotFound):
		return domain.Fail(http.StatusNotFound, "Item does not exist")
	case validate.IsValidation(err):
		return domain.Fail(http.StatusBadRequest, err.Error())
	default:
		return domain.Fail(http.StatusInternalServerError, err.Error())
	}
}

func respond(c *gin.Context, env domain.Envelope) {
	c.JSON(env.StatusCode, env)
}

func respondError(c *gin.Context, err error) {
	respond(c, errorEnvelope(err))
}
