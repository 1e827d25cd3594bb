package httpserver

import (
	"context"
	"errors"
	"log"
	"time"

	"lumina-storefront/internal/domain"
	ordersvc "lumina-storefront/internal/service/order"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps collects the services the router depends on. Handlers see small
// interfaces so tests can swap in stubs.
type Deps struct {
	ProductSvc  ProductService
	CategorySvc CategoryService
	CartSvc     CartService
	OrderSvc    OrderService
	RatesSvc    RatesService
	ThemeSvc    ThemeService
	AdminSvc    AdminService
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

type CartService interface {
	Get(sessionID string) domain.Cart
	AddLine(ctx context.Context, sessionID, productID, variantID string) (domain.Cart, error)
	RemoveLine(sessionID string, index int) domain.Cart
	Clear(sessionID string)
}

type OrderService interface {
	Checkout(ctx context.Context, sessionID string, in ordersvc.CheckoutInput) (*domain.Order, error)
	PriceQuote(ctx context.Context, sessionID, wilaya string, mode domain.DeliveryMode) (ordersvc.Quote, error)
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
}

type RatesService interface {
	List(ctx context.Context) ([]domain.WilayaRate, error)
	Replace(ctx context.Context, entries []domain.WilayaRate) error
}

type ThemeService interface {
	Get(ctx context.Context) (domain.StoreTheme, error)
	Patch(ctx context.Context, p domain.ThemePatch) (domain.StoreTheme, error)
}

type AdminService interface {
	Login(ctx context.Context, identifier, secret string) (string, error)
	Authenticate(ctx context.Context, token string) error
	Logout(ctx context.Context, token string)
	TokenTTLSeconds() int
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.ProductSvc == nil || deps.CategorySvc == nil || deps.CartSvc == nil ||
		deps.OrderSvc == nil || deps.RatesSvc == nil || deps.ThemeSvc == nil || deps.AdminSvc == nil {
		return nil, errors.New("httpserver: missing dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.ProductSvc))
		api.GET("/products/:id", getProductHandler(deps.ProductSvc))
		api.GET("/categories", listCategoriesHandler(deps.CategorySvc))
		api.GET("/theme", getThemeHandler(deps.ThemeSvc))
		api.GET("/delivery-rates", listRatesHandler(deps.RatesSvc))

		api.GET("/cart", getCartHandler(deps.CartSvc))
		api.POST("/cart/lines", addCartLineHandler(deps.CartSvc))
		api.DELETE("/cart/lines/:index", removeCartLineHandler(deps.CartSvc))
		api.DELETE("/cart", clearCartHandler(deps.CartSvc))

		api.POST("/checkout/quote", quoteHandler(deps.OrderSvc))
		api.POST("/checkout", checkoutHandler(deps.OrderSvc))
	}

	api.POST("/admin/login", loginHandler(deps.AdminSvc))

	adm := api.Group("/admin", authMiddleware(deps.AdminSvc))
	{
		adm.POST("/logout", logoutHandler(deps.AdminSvc))

		adm.GET("/orders", listOrdersHandler(deps.OrderSvc))
		adm.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
		adm.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))
		adm.GET("/sales", listSalesHandler(deps.OrderSvc))

		adm.PUT("/delivery-rates", replaceRatesHandler(deps.RatesSvc))

		adm.POST("/products", createProductHandler(deps.ProductSvc))
		adm.PUT("/products/:id", updateProductHandler(deps.ProductSvc))
		adm.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc))

		adm.POST("/categories", createCategoryHandler(deps.CategorySvc))
		adm.PUT("/categories/:id", updateCategoryHandler(deps.CategorySvc))
		adm.DELETE("/categories/:id", deleteCategoryHandler(deps.CategorySvc))

		adm.PATCH("/theme", patchThemeHandler(deps.ThemeSvc))
	}

	return router, nil
}
