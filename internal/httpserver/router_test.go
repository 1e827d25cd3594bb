package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"lumina-storefront/internal/domain"
	ordersvc "lumina-storefront/internal/service/order"
	"github.com/gin-gonic/gin"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubProductService struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (s *stubProductService) List(_ context.Context) ([]domain.Product, error) {
	return s.products, s.err
}

func (s *stubProductService) Get(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.err
}

func (s *stubProductService) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, s.err
}

func (s *stubProductService) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	return &p, s.err
}

func (s *stubProductService) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubCategoryService struct {
	categories []domain.Category
	err        error
}

func (s *stubCategoryService) List(_ context.Context) ([]domain.Category, error) {
	return s.categories, s.err
}

func (s *stubCategoryService) Create(_ context.Context, c domain.Category) (*domain.Category, error) {
	return &c, s.err
}

func (s *stubCategoryService) Update(_ context.Context, c domain.Category) (*domain.Category, error) {
	return &c, s.err
}

func (s *stubCategoryService) Delete(_ context.Context, _ string) error {
	return s.err
}

type stubCartService struct {
	cart    domain.Cart
	err     error
	cleared bool
	removed int
}

func (s *stubCartService) Get(sessionID string) domain.Cart {
	c := s.cart
	c.SessionID = sessionID
	return c
}

func (s *stubCartService) AddLine(_ context.Context, sessionID, _, _ string) (domain.Cart, error) {
	if s.err != nil {
		return domain.Cart{}, s.err
	}
	c := s.cart
	c.SessionID = sessionID
	return c, nil
}

func (s *stubCartService) RemoveLine(sessionID string, index int) domain.Cart {
	s.removed = index
	c := s.cart
	c.SessionID = sessionID
	return c
}

func (s *stubCartService) Clear(_ string) {
	s.cleared = true
}

type stubOrderService struct {
	order     *domain.Order
	orders    []domain.Order
	sales     []domain.SaleRecord
	quote     ordersvc.Quote
	err       error
	statusErr error
}

func (s *stubOrderService) Checkout(_ context.Context, _ string, _ ordersvc.CheckoutInput) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) PriceQuote(_ context.Context, _, _ string, _ domain.DeliveryMode) (ordersvc.Quote, error) {
	return s.quote, s.err
}

func (s *stubOrderService) List(_ context.Context) ([]domain.Order, error) {
	return s.orders, s.err
}

func (s *stubOrderService) Get(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.err
}

func (s *stubOrderService) UpdateStatus(_ context.Context, _ string, _ domain.OrderStatus) error {
	return s.statusErr
}

func (s *stubOrderService) ListSales(_ context.Context) ([]domain.SaleRecord, error) {
	return s.sales, s.err
}

type stubRatesService struct {
	rates []domain.WilayaRate
	saved []domain.WilayaRate
	err   error
}

func (s *stubRatesService) List(_ context.Context) ([]domain.WilayaRate, error) {
	return s.rates, s.err
}

func (s *stubRatesService) Replace(_ context.Context, entries []domain.WilayaRate) error {
	if s.err != nil {
		return s.err
	}
	s.saved = entries
	return nil
}

type stubThemeService struct {
	theme domain.StoreTheme
	err   error
}

func (s *stubThemeService) Get(_ context.Context) (domain.StoreTheme, error) {
	return s.theme, s.err
}

func (s *stubThemeService) Patch(_ context.Context, p domain.ThemePatch) (domain.StoreTheme, error) {
	if s.err != nil {
		return domain.StoreTheme{}, s.err
	}
	return p.Apply(s.theme), nil
}

type stubAdminService struct {
	token    string
	loginErr error
	authErr  error
	revoked  string
}

func (s *stubAdminService) Login(_ context.Context, _, _ string) (string, error) {
	return s.token, s.loginErr
}

func (s *stubAdminService) Authenticate(_ context.Context, _ string) error {
	return s.authErr
}

func (s *stubAdminService) Logout(_ context.Context, token string) {
	s.revoked = token
}

func (s *stubAdminService) TokenTTLSeconds() int {
	return 43200
}

func defaultDeps() Deps {
	return Deps{
		ProductSvc:  &stubProductService{},
		CategorySvc: &stubCategoryService{},
		CartSvc:     &stubCartService{},
		OrderSvc:    &stubOrderService{},
		RatesSvc:    &stubRatesService{},
		ThemeSvc:    &stubThemeService{},
		AdminSvc:    &stubAdminService{},
	}
}

func newTestRouter(t *testing.T, deps Deps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, deps, []string{"*"})
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	return router
}

func TestBuildRouterRejectsMissingDependency(t *testing.T) {
	deps := defaultDeps()
	deps.OrderSvc = nil
	if _, err := buildRouter(logDiscard(), nil, deps, []string{"*"}); err == nil {
		t.Fatalf("expected error for missing dependency")
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, defaultDeps())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListProducts(t *testing.T) {
	deps := defaultDeps()
	deps.ProductSvc = &stubProductService{products: []domain.Product{
		{ID: "p1", Name: "Sahara Twilight Oud", Price: 18500},
	}}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got []domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Sahara Twilight Oud" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestListProductsEmptyIsJSONArray(t *testing.T) {
	router := newTestRouter(t, defaultDeps())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if rec.Body.String() != "[]" {
		t.Fatalf("empty list must serialize as [], got %s", rec.Body.String())
	}
}

func TestGetProductNotFound(t *testing.T) {
	deps := defaultDeps()
	deps.ProductSvc = &stubProductService{err: domain.ErrNotFound}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListProductsServiceError(t *testing.T) {
	deps := defaultDeps()
	deps.ProductSvc = &stubProductService{err: errors.New("boom")}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestGetTheme(t *testing.T) {
	deps := defaultDeps()
	deps.ThemeSvc = &stubThemeService{theme: domain.DefaultTheme()}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/theme", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got domain.StoreTheme
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.StoreName != "Lumina Boutique" {
		t.Fatalf("unexpected theme: %+v", got)
	}
}

func TestListDeliveryRatesIsPublic(t *testing.T) {
	deps := defaultDeps()
	deps.RatesSvc = &stubRatesService{rates: []domain.WilayaRate{
		{Wilaya: "16 - Alger", HomeFee: 400, PickupFee: 250},
	}}
	router := newTestRouter(t, deps)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/delivery-rates", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
