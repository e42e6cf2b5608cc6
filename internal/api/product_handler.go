package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
)

//go:generate mockery --name ProductService --output ../mocks
type ProductService interface {
	Create(ctx context.Context, tenantID uuid.UUID, req dto.ProductRequest) (dto.ProductResponse, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (dto.ProductResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, query dto.ListQuery) (dto.ProductListResponse, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req dto.ProductRequest) (dto.ProductResponse, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type ProductHandler struct {
	*BaseHandler
	service ProductService
}

func NewProductHandler(service ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param body body dto.ProductRequest true "Product"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security ShopToken
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.service.Create(h.RequestCtx(c), tenantID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// ListProducts godoc
// @Summary List products
// @Tags products
// @Produce json
// @Param limit query int false "Page size (1-500)"
// @Param offset query int false "Offset"
// @Param sku query string false "Exact SKU"
// @Success 200 {object} dto.ProductListResponse
// @Failure 401 {object} dto.Error
// @Security ShopToken
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	products, err := h.service.List(h.RequestCtx(c), tenantID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct godoc
// @Summary Get a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} dto.Error
// @Security ShopToken
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	product, err := h.service.GetByID(h.RequestCtx(c), tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// UpdateProduct godoc
// @Summary Replace a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body dto.ProductRequest true "Product"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Security ShopToken
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	product, err := h.service.Update(h.RequestCtx(c), tenantID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags products
// @Param id path string true "Product ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Security ShopToken
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), tenantID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
