package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/repository"
)

type DocumentService struct {
	repo repository.Repository
}

func NewDocumentService(repo repository.Repository) *DocumentService {
	return &DocumentService{repo: repo}
}

func (s *DocumentService) Create(ctx context.Context, tenantID uuid.UUID, req dto.DocumentRequest) (dto.DocumentResponse, error) {
	document, err := toDocument(req)
	if err != nil {
		return dto.DocumentResponse{}, err
	}
	document.TenantID = tenantID

	if err := s.repo.Document().Create(ctx, document); err != nil {
		return dto.DocumentResponse{}, err
	}
	return dto.FromDocument(document), nil
}

func (s *DocumentService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (dto.DocumentResponse, error) {
	document, err := s.repo.Document().GetByID(ctx, tenantID, id)
	if err != nil {
		return dto.DocumentResponse{}, err
	}
	return dto.FromDocument(document), nil
}

func (s *DocumentService) List(ctx context.Context, tenantID uuid.UUID, query dto.ListQuery) (dto.DocumentListResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	documents, err := s.repo.Document().List(ctx, domain.DocumentFilter{
		TenantID: tenantID,
		Limit:    limit,
		Offset:   query.Offset,
	})
	if err != nil {
		return dto.DocumentListResponse{}, err
	}

	resp := dto.DocumentListResponse{
		Documents: make([]dto.DocumentResponse, len(documents)),
		Limit:     limit,
		Offset:    query.Offset,
	}
	for i := range documents {
		resp.Documents[i] = dto.FromDocument(&documents[i])
	}
	return resp, nil
}

func (s *DocumentService) Update(ctx context.Context, tenantID, id uuid.UUID, req dto.DocumentRequest) (dto.DocumentResponse, error) {
	document, err := toDocument(req)
	if err != nil {
		return dto.DocumentResponse{}, err
	}
	document.ID = id
	document.TenantID = tenantID

	if err := s.repo.Document().Update(ctx, document); err != nil {
		return dto.DocumentResponse{}, err
	}
	return s.GetByID(ctx, tenantID, id)
}

// Delete removes the document together with its chunks.
func (s *DocumentService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.Document().Delete(ctx, tenantID, id)
}

// ReplaceChunks swaps the stored chunk set of a document. Chunks without a
// source title inherit the document title.
func (s *DocumentService) ReplaceChunks(ctx context.Context, tenantID, documentID uuid.UUID, req dto.ReplaceChunksRequest) (dto.ChunkListResponse, error) {
	document, err := s.repo.Document().GetByID(ctx, tenantID, documentID)
	if err != nil {
		return dto.ChunkListResponse{}, err
	}

	chunks := make([]domain.RagChunk, len(req.Chunks))
	for i := range req.Chunks {
		if strings.TrimSpace(req.Chunks[i].Content) == "" {
			return dto.ChunkListResponse{}, invalidInput("chunk %d: content must not be empty", req.Chunks[i].ChunkIndex)
		}
		if err := domain.ValidateEmbedding(req.Chunks[i].Embedding); err != nil {
			return dto.ChunkListResponse{}, err
		}

		chunks[i] = req.Chunks[i].ToRagChunk()
		if chunks[i].SourceTitle == nil {
			title := document.Title
			chunks[i].SourceTitle = &title
		}
	}

	if err := s.repo.RagChunk().ReplaceForDocument(ctx, tenantID, documentID, chunks); err != nil {
		return dto.ChunkListResponse{}, err
	}

	return s.ListChunks(ctx, tenantID, documentID)
}

// ListChunks returns the chunks of a document ordered by chunk_index.
func (s *DocumentService) ListChunks(ctx context.Context, tenantID, documentID uuid.UUID) (dto.ChunkListResponse, error) {
	if _, err := s.repo.Document().GetByID(ctx, tenantID, documentID); err != nil {
		return dto.ChunkListResponse{}, err
	}

	chunks, err := s.repo.RagChunk().ListByDocument(ctx, tenantID, documentID)
	if err != nil {
		return dto.ChunkListResponse{}, err
	}

	resp := dto.ChunkListResponse{
		DocumentID: documentID,
		Chunks:     make([]dto.ChunkResponse, len(chunks)),
	}
	for i := range chunks {
		resp.Chunks[i] = dto.FromRagChunk(&chunks[i])
	}
	return resp, nil
}

func toDocument(req dto.DocumentRequest) (*domain.Document, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, invalidInput("title must not be empty")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, invalidInput("content must not be empty")
	}
	return &domain.Document{Title: title, Content: req.Content}, nil
}
