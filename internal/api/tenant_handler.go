package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/utils"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (dto.ProvisionedTenantResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]dto.TenantResponse, error)
	ScheduleOffboard(ctx context.Context, id uuid.UUID) error
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
	logger  *logger.Logger
}

func NewTenantHandler(service TenantService, logger *logger.Logger) *TenantHandler {
	return &TenantHandler{service: service, logger: logger}
}

// logAdminAction records which operator (the admin JWT subject) changed a tenant.
func (h *TenantHandler) logAdminAction(c *gin.Context, action string, tenantID uuid.UUID) {
	operator, err := utils.GetSubjectFromContext(h.RequestCtx(c))
	if err != nil || operator == "" {
		operator = "unknown"
	}
	h.logger.Info("Admin tenant action",
		zap.String("action", action),
		zap.String("tenant_id", tenantID.String()),
		zap.String("operator", operator))
}

// CreateTenant godoc
// @Summary Provision a tenant
// @Description Create a tenant and return its public shop token. The token is shown only in this response.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body dto.CreateTenantRequest true "Tenant"
// @Success 201 {object} dto.ProvisionedTenantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Security BearerAuth
// @Router /admin/tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tenant, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.logAdminAction(c, "create", tenant.ID)
	c.JSON(http.StatusCreated, tenant)
}

// ListTenants godoc
// @Summary List tenants
// @Tags admin
// @Produce json
// @Success 200 {array} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Failure 503 {object} dto.Error
// @Security BearerAuth
// @Router /admin/tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// GetTenant godoc
// @Summary Get a tenant
// @Tags admin
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /admin/tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	tenant, err := h.service.GetByID(h.RequestCtx(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTenant(tenant))
}

// DeleteTenant godoc
// @Summary Delete a tenant
// @Description Delete a tenant with all of its products, documents and chunks.
// @Tags admin
// @Param id path string true "Tenant ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Security BearerAuth
// @Router /admin/tenants/{id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), id); err != nil {
		respondError(c, err)
		return
	}

	h.logAdminAction(c, "delete", id)
	c.Status(http.StatusNoContent)
}

// OffboardTenant godoc
// @Summary Schedule tenant offboarding
// @Description Queue the tenant for archival to S3 followed by deletion.
// @Tags admin
// @Produce json
// @Param id path string true "Tenant ID"
// @Success 202 {object} dto.OffboardResponse
// @Failure 404 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Security BearerAuth
// @Router /admin/tenants/{id}/offboard [post]
func (h *TenantHandler) OffboardTenant(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.service.ScheduleOffboard(h.RequestCtx(c), id); err != nil {
		respondError(c, err)
		return
	}

	h.logAdminAction(c, "offboard", id)
	c.JSON(http.StatusAccepted, dto.OffboardResponse{TenantID: id, Status: "queued"})
}

// GetMe godoc
// @Summary Current tenant
// @Description Resolve the X-Shop-Token header to its tenant.
// @Tags shop
// @Produce json
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Security ShopToken
// @Router /me [get]
func (h *TenantHandler) GetMe(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	tenant, err := h.service.GetByID(h.RequestCtx(c), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromTenant(tenant))
}
