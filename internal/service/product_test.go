package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/kingrain94/shop-rag-api/internal/api/dto"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/mocks"
)

type ProductServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockProduct *mocks.ProductRepository
	service     *ProductService
	tenantID    uuid.UUID
}

func (s *ProductServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockProduct = new(mocks.ProductRepository)
	s.mockRepo.On("Product").Return(s.mockProduct)

	s.service = NewProductService(s.mockRepo)
	s.tenantID = uuid.New()
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}

func ptr[T any](v T) *T {
	return &v
}

func (s *ProductServiceTestSuite) TestCreate_NormalizesFields() {
	ctx := context.Background()
	price := decimal.RequireFromString("19.999")
	req := dto.ProductRequest{
		SKU:      " MUG-1 ",
		Name:     "Mug",
		Price:    &price,
		Currency: ptr("eur"),
		StockQty: ptr(4),
		Tags:     []string{"kitchen", " ", "gift"},
	}

	s.mockProduct.On("Create", ctx, mock.MatchedBy(func(p *domain.Product) bool {
		return p.TenantID == s.tenantID &&
			p.SKU == "MUG-1" &&
			*p.Currency == "EUR" &&
			p.StockQty == 4 &&
			p.Price.Decimal.Equal(decimal.RequireFromString("20.00")) &&
			len(p.Tags) == 2
	})).Return(nil)

	resp, err := s.service.Create(ctx, s.tenantID, req)

	s.Require().NoError(err)
	s.Equal("MUG-1", resp.SKU)
	s.Equal([]string{"kitchen", "gift"}, resp.Tags)
	s.mockProduct.AssertExpectations(s.T())
}

func (s *ProductServiceTestSuite) TestCreate_Validation() {
	negative := decimal.NewFromInt(-1)
	huge := decimal.New(1, 11)

	cases := map[string]dto.ProductRequest{
		"missing sku":    {Name: "Mug"},
		"missing name":   {SKU: "MUG-1", Name: "  "},
		"negative stock": {SKU: "MUG-1", Name: "Mug", StockQty: ptr(-1)},
		"negative price": {SKU: "MUG-1", Name: "Mug", Price: &negative},
		"price overflow": {SKU: "MUG-1", Name: "Mug", Price: &huge},
		"bad currency":   {SKU: "MUG-1", Name: "Mug", Currency: ptr("EURO")},
	}

	for name, req := range cases {
		s.Run(name, func() {
			_, err := s.service.Create(context.Background(), s.tenantID, req)
			s.ErrorIs(err, domain.ErrInvalidInput)
		})
	}
	s.mockProduct.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *ProductServiceTestSuite) TestList_DefaultsPageSize() {
	ctx := context.Background()
	s.mockProduct.On("List", ctx, domain.ProductFilter{TenantID: s.tenantID, Limit: defaultPageSize}).
		Return([]domain.Product{{ID: uuid.New(), SKU: "A", Name: "A"}}, nil)

	resp, err := s.service.List(ctx, s.tenantID, dto.ListQuery{})

	s.Require().NoError(err)
	s.Len(resp.Products, 1)
	s.Equal(defaultPageSize, resp.Limit)
	s.Equal([]string{}, resp.Products[0].Tags)
}

func (s *ProductServiceTestSuite) TestUpdate_ScopesToTenant() {
	ctx := context.Background()
	id := uuid.New()

	s.mockProduct.On("Update", ctx, mock.MatchedBy(func(p *domain.Product) bool {
		return p.ID == id && p.TenantID == s.tenantID && p.Name == "Big Mug"
	})).Return(nil)
	s.mockProduct.On("GetByID", ctx, s.tenantID, id).
		Return(&domain.Product{ID: id, TenantID: s.tenantID, SKU: "MUG-1", Name: "Big Mug"}, nil)

	resp, err := s.service.Update(ctx, s.tenantID, id, dto.ProductRequest{SKU: "MUG-1", Name: "Big Mug"})

	s.Require().NoError(err)
	s.Equal("Big Mug", resp.Name)
}

func (s *ProductServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()
	id := uuid.New()
	s.mockProduct.On("Update", ctx, mock.AnythingOfType("*domain.Product")).Return(domain.ErrNotFound)

	_, err := s.service.Update(ctx, s.tenantID, id, dto.ProductRequest{SKU: "MUG-1", Name: "Mug"})

	s.ErrorIs(err, domain.ErrNotFound)
}
