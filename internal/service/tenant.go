package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/repository"
)

//go:generate mockery --name OffboardQueue --output ../mocks
type OffboardQueue interface {
	SendOffboardMessage(ctx context.Context, tenantID uuid.UUID) error
}

type TenantService struct {
	repo     repository.Repository
	queue    OffboardQueue
	newToken func() (string, error)
}

// NewTenantService builds the service. queue may be nil, in which case
// ScheduleOffboard fails with ErrOffboardingDisabled.
func NewTenantService(repo repository.Repository, queue OffboardQueue) *TenantService {
	return &TenantService{
		repo:     repo,
		queue:    queue,
		newToken: GenerateToken,
	}
}

// Create provisions a tenant with a fresh public token. A token collision
// surfaces as ErrIntegrityViolation and is not retried.
func (s *TenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (dto.ProvisionedTenantResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return dto.ProvisionedTenantResponse{}, invalidInput("tenant name must not be empty")
	}

	token, err := s.newToken()
	if err != nil {
		return dto.ProvisionedTenantResponse{}, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	created, err := s.repo.Tenant().Create(ctx, &domain.Tenant{
		Name:        name,
		PublicToken: token,
	})
	if err != nil {
		return dto.ProvisionedTenantResponse{}, fmt.Errorf("failed to create tenant: %w", err)
	}

	return dto.ProvisionedTenantResponse{
		ID:          created.ID,
		Name:        created.Name,
		PublicToken: created.PublicToken,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// Resolve maps a shop token to its tenant id. Empty and unknown tokens both
// yield domain.ErrUnauthenticated; store failures pass through.
func (s *TenantService) Resolve(ctx context.Context, credential string) (uuid.UUID, error) {
	if credential == "" {
		return uuid.Nil, errMissingShopToken
	}

	tenant, err := s.repo.Tenant().GetByPublicToken(ctx, credential)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, errInvalidShopToken
		}
		return uuid.Nil, err
	}

	return tenant.ID, nil
}

func (s *TenantService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	return s.repo.Tenant().GetByID(ctx, id)
}

func (s *TenantService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Tenant().Delete(ctx, id)
}

func (s *TenantService) List(ctx context.Context) ([]dto.TenantResponse, error) {
	tenants, err := s.repo.Tenant().List(ctx)
	if err != nil {
		return []dto.TenantResponse{}, err
	}

	tenantResponses := make([]dto.TenantResponse, len(tenants))
	for i := range tenants {
		tenantResponses[i] = dto.FromTenant(&tenants[i])
	}
	return tenantResponses, nil
}

// ScheduleOffboard queues the tenant for archive and deletion by the
// offboarding worker.
func (s *TenantService) ScheduleOffboard(ctx context.Context, id uuid.UUID) error {
	if s.queue == nil {
		return ErrOffboardingDisabled
	}

	if _, err := s.repo.Tenant().GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.queue.SendOffboardMessage(ctx, id); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrExternalService, err)
	}
	return nil
}
