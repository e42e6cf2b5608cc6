package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
)

//go:generate mockery --name DocumentService --output ../mocks
type DocumentService interface {
	Create(ctx context.Context, tenantID uuid.UUID, req dto.DocumentRequest) (dto.DocumentResponse, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (dto.DocumentResponse, error)
	List(ctx context.Context, tenantID uuid.UUID, query dto.ListQuery) (dto.DocumentListResponse, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req dto.DocumentRequest) (dto.DocumentResponse, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	ReplaceChunks(ctx context.Context, tenantID, documentID uuid.UUID, req dto.ReplaceChunksRequest) (dto.ChunkListResponse, error)
	ListChunks(ctx context.Context, tenantID, documentID uuid.UUID) (dto.ChunkListResponse, error)
}

type DocumentHandler struct {
	*BaseHandler
	service DocumentService
}

func NewDocumentHandler(service DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// CreateDocument godoc
// @Summary Create a document
// @Tags documents
// @Accept json
// @Produce json
// @Param body body dto.DocumentRequest true "Document"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} dto.Error
// @Security ShopToken
// @Router /documents [post]
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	document, err := h.service.Create(h.RequestCtx(c), tenantID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, document)
}

// ListDocuments godoc
// @Summary List documents
// @Tags documents
// @Produce json
// @Param limit query int false "Page size (1-500)"
// @Param offset query int false "Offset"
// @Success 200 {object} dto.DocumentListResponse
// @Security ShopToken
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return
	}

	documents, err := h.service.List(h.RequestCtx(c), tenantID, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, documents)
}

// GetDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.Error
// @Security ShopToken
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	document, err := h.service.GetByID(h.RequestCtx(c), tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

// UpdateDocument godoc
// @Summary Replace a document
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param body body dto.DocumentRequest true "Document"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} dto.Error
// @Security ShopToken
// @Router /documents/{id} [put]
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req dto.DocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	document, err := h.service.Update(h.RequestCtx(c), tenantID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, document)
}

// DeleteDocument godoc
// @Summary Delete a document and its chunks
// @Tags documents
// @Param id path string true "Document ID"
// @Success 204
// @Failure 404 {object} dto.Error
// @Security ShopToken
// @Router /documents/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
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

// ReplaceChunks godoc
// @Summary Replace the chunks of a document
// @Description Atomically replaces the stored chunk set. Embeddings, when present, must have exactly 768 values.
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID"
// @Param body body dto.ReplaceChunksRequest true "Chunks"
// @Success 200 {object} dto.ChunkListResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Security ShopToken
// @Router /documents/{id}/chunks [put]
func (h *DocumentHandler) ReplaceChunks(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	var req dto.ReplaceChunksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	chunks, err := h.service.ReplaceChunks(h.RequestCtx(c), tenantID, id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chunks)
}

// ListChunks godoc
// @Summary List the chunks of a document
// @Tags documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} dto.ChunkListResponse
// @Failure 404 {object} dto.Error
// @Security ShopToken
// @Router /documents/{id}/chunks [get]
func (h *DocumentHandler) ListChunks(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}

	chunks, err := h.service.ListChunks(h.RequestCtx(c), tenantID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chunks)
}
