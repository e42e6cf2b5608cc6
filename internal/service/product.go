package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/repository"
)

const defaultPageSize = 50

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// price fits numeric(12,2)
var maxPrice = decimal.New(1, 10)

type ProductService struct {
	repo repository.Repository
}

func NewProductService(repo repository.Repository) *ProductService {
	return &ProductService{repo: repo}
}

func (s *ProductService) Create(ctx context.Context, tenantID uuid.UUID, req dto.ProductRequest) (dto.ProductResponse, error) {
	product, err := toProduct(req)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	product.TenantID = tenantID

	if err := s.repo.Product().Create(ctx, product); err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.FromProduct(product), nil
}

func (s *ProductService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (dto.ProductResponse, error) {
	product, err := s.repo.Product().GetByID(ctx, tenantID, id)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	return dto.FromProduct(product), nil
}

func (s *ProductService) List(ctx context.Context, tenantID uuid.UUID, query dto.ListQuery) (dto.ProductListResponse, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	products, err := s.repo.Product().List(ctx, domain.ProductFilter{
		TenantID: tenantID,
		SKU:      strings.TrimSpace(query.SKU),
		Limit:    limit,
		Offset:   query.Offset,
	})
	if err != nil {
		return dto.ProductListResponse{}, err
	}

	resp := dto.ProductListResponse{
		Products: make([]dto.ProductResponse, len(products)),
		Limit:    limit,
		Offset:   query.Offset,
	}
	for i := range products {
		resp.Products[i] = dto.FromProduct(&products[i])
	}
	return resp, nil
}

// Update replaces every mutable field of the product.
func (s *ProductService) Update(ctx context.Context, tenantID, id uuid.UUID, req dto.ProductRequest) (dto.ProductResponse, error) {
	product, err := toProduct(req)
	if err != nil {
		return dto.ProductResponse{}, err
	}
	product.ID = id
	product.TenantID = tenantID

	if err := s.repo.Product().Update(ctx, product); err != nil {
		return dto.ProductResponse{}, err
	}
	return s.GetByID(ctx, tenantID, id)
}

func (s *ProductService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.repo.Product().Delete(ctx, tenantID, id)
}

func toProduct(req dto.ProductRequest) (*domain.Product, error) {
	sku := strings.TrimSpace(req.SKU)
	name := strings.TrimSpace(req.Name)
	if sku == "" {
		return nil, invalidInput("sku must not be empty")
	}
	if name == "" {
		return nil, invalidInput("name must not be empty")
	}

	product := &domain.Product{
		SKU:         sku,
		Name:        name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		ProductURL:  req.ProductURL,
		Tags:        pq.StringArray{},
	}

	if req.StockQty != nil {
		if *req.StockQty < 0 {
			return nil, invalidInput("stock_qty must be >= 0")
		}
		product.StockQty = *req.StockQty
	}

	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, invalidInput("price must be >= 0")
		}
		if req.Price.GreaterThanOrEqual(maxPrice) {
			return nil, invalidInput("price exceeds 10 integer digits")
		}
		product.Price = decimal.NewNullDecimal(req.Price.Round(2))
	}

	if req.Currency != nil {
		currency := strings.ToUpper(strings.TrimSpace(*req.Currency))
		if !currencyPattern.MatchString(currency) {
			return nil, invalidInput("currency must be a three letter code")
		}
		product.Currency = &currency
	}

	for _, tag := range req.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			product.Tags = append(product.Tags, tag)
		}
	}

	return product, nil
}
