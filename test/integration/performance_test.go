package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kingrain94/shop-rag-api/internal/api"
	"github.com/kingrain94/shop-rag-api/internal/api/dto"
	"github.com/kingrain94/shop-rag-api/internal/domain"
	"github.com/kingrain94/shop-rag-api/internal/middleware"
	"github.com/kingrain94/shop-rag-api/internal/mocks"
	"github.com/kingrain94/shop-rag-api/internal/service"
	"github.com/kingrain94/shop-rag-api/pkg/logger"
)

type shopFixture struct {
	router  *gin.Engine
	tokens  []string
	tenants []uuid.UUID
}

// newShopFixture wires TenantAuth and the product handler over mocked
// repositories holding one product per tenant, tagged with its tenant id.
func newShopFixture(t testing.TB, tenantCount int) *shopFixture {
	gin.SetMode(gin.TestMode)

	tenantRepo := new(mocks.TenantRepository)
	productRepo := new(mocks.ProductRepository)
	repo := new(mocks.Repository)
	repo.On("Tenant").Return(tenantRepo)
	repo.On("Product").Return(productRepo)

	f := &shopFixture{}
	for i := range tenantCount {
		id := uuid.New()
		token := fmt.Sprintf("token-%03d-%s", i, uuid.NewString()[:8])
		f.tenants = append(f.tenants, id)
		f.tokens = append(f.tokens, token)

		tenantRepo.On("GetByPublicToken", mock.Anything, token).Return(&domain.Tenant{ID: id, Name: token}, nil)
		productRepo.On("List", mock.Anything, mock.MatchedBy(func(filter domain.ProductFilter) bool {
			return filter.TenantID == id
		})).Return([]domain.Product{{ID: uuid.New(), TenantID: id, SKU: id.String(), Name: "Tent"}}, nil)
	}
	tenantRepo.On("GetByPublicToken", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	log := logger.NewNop()
	tenantAuth := middleware.NewTenantAuthMiddleware(service.NewTenantService(repo, nil), log)
	handler := api.NewProductHandler(service.NewProductService(repo))

	f.router = gin.New()
	f.router.GET("/products", tenantAuth.TenantAuth(), handler.ListProducts)
	return f
}

func (f *shopFixture) list(token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	req.Header.Set(middleware.ShopTokenHeader, token)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func BenchmarkResolveAndListProducts(b *testing.B) {
	f := newShopFixture(b, 16)

	b.ResetTimer()
	b.ReportAllocs()

	var n atomic.Int64
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			token := f.tokens[int(n.Add(1))%len(f.tokens)]
			if w := f.list(token); w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

func BenchmarkRejectUnknownToken(b *testing.B) {
	f := newShopFixture(b, 1)

	b.ResetTimer()
	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if w := f.list("not-a-token"); w.Code != http.StatusUnauthorized {
				b.Errorf("Expected status 401, got %d", w.Code)
			}
		}
	})
}

// TestConcurrentTenantsNeverSeeEachOther interleaves requests from many
// tenants and checks every response belongs to the caller's tenant.
func TestConcurrentTenantsNeverSeeEachOther(t *testing.T) {
	f := newShopFixture(t, 20)

	const requestsPerTenant = 25
	var (
		wg        sync.WaitGroup
		mismatch  atomic.Int32
		failures  atomic.Int32
		responses atomic.Int32
	)

	for i := range f.tokens {
		wg.Add(1)
		go func(token string, tenantID uuid.UUID) {
			defer wg.Done()
			for range requestsPerTenant {
				w := f.list(token)
				if w.Code != http.StatusOK {
					failures.Add(1)
					continue
				}

				var body dto.ProductListResponse
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body.Products) != 1 {
					failures.Add(1)
					continue
				}
				if body.Products[0].SKU != tenantID.String() {
					mismatch.Add(1)
				}
				responses.Add(1)
			}
		}(f.tokens[i], f.tenants[i])
	}
	wg.Wait()

	require.Zero(t, failures.Load())
	assert.Zero(t, mismatch.Load(), "responses leaked across tenants")
	assert.EqualValues(t, len(f.tokens)*requestsPerTenant, responses.Load())
}

func TestConcurrentUnknownTokensAllRejected(t *testing.T) {
	f := newShopFixture(t, 3)

	var wg sync.WaitGroup
	var unexpected atomic.Int32
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token := ""
			if i%2 == 1 {
				token = uuid.NewString()
			}
			if w := f.list(token); w.Code != http.StatusUnauthorized {
				unexpected.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, unexpected.Load())
}
