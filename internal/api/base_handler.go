package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		if ctx.Value(contextKey) == nil {
			ctx = context.WithValue(ctx, contextKey, v)
		}
	}
	return ctx
}

// TenantID returns the tenant resolved by TenantAuth. It writes a 401 and
// returns false when the route was reached without one.
func (h *BaseHandler) TenantID(c *gin.Context) (uuid.UUID, bool) {
	tenantID, err := utils.GetTenantIDFromContext(h.RequestCtx(c))
	if err != nil {
		respondError(c, domain.ErrUnauthenticated)
		return uuid.Nil, false
	}
	return tenantID, true
}

// PathID parses the :id route parameter. Malformed ids are reported as 404
// so they are indistinguishable from ids owned by another tenant.
func (h *BaseHandler) PathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dto.Error{Error: "not found"})
		return uuid.Nil, false
	}
	return id, true
}
