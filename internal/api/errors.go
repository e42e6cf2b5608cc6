package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/middleware"
)

// respondError maps the domain error taxonomy onto HTTP. Only client errors
// echo the error text; server-side failures get a fixed message.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: middleware.UnauthenticatedMessage})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: "not found"})
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	case errors.Is(err, domain.ErrIntegrityViolation):
		c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
	case errors.Is(err, domain.ErrExternalService):
		c.JSON(http.StatusBadGateway, dto.Error{Error: "upstream service error"})
	case errors.Is(err, domain.ErrPersistence):
		c.JSON(http.StatusServiceUnavailable, dto.Error{Error: "storage unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: "internal error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
}
