package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"lumina-storefront/internal/config"
	"lumina-storefront/internal/db"
	"lumina-storefront/internal/httpserver"
	"lumina-storefront/internal/notify"
	categoryrepo "lumina-storefront/internal/repository/category"
	orderrepo "lumina-storefront/internal/repository/order"
	productrepo "lumina-storefront/internal/repository/product"
	ratesrepo "lumina-storefront/internal/repository/rates"
	themerepo "lumina-storefront/internal/repository/theme"
	tokenrepo "lumina-storefront/internal/repository/token"
	adminsvc "lumina-storefront/internal/service/admin"
	cartsvc "lumina-storefront/internal/service/cart"
	categorysvc "lumina-storefront/internal/service/category"
	ordersvc "lumina-storefront/internal/service/order"
	productsvc "lumina-storefront/internal/service/product"
	ratessvc "lumina-storefront/internal/service/rates"
	themesvc "lumina-storefront/internal/service/theme"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	productService := productsvc.New(productRepo)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	categoryService := categorysvc.New(categoryRepo)
	cartService := cartsvc.New(productRepo)
	ratesRepo := ratesrepo.NewPostgres(dbpool)
	ratesService := ratessvc.New(ratesRepo, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	orderService := ordersvc.New(orderRepo, cartService, ratesService, &notify.LogNotifier{Logger: logger})
	themeRepo := themerepo.NewPostgres(dbpool)
	themeService := themesvc.New(themeRepo)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	adminService := adminsvc.New(cfg.AdminUser, cfg.AdminPasswordHash, tokenRepo, cfg.TokenTTL)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		ProductSvc:  productService,
		CategorySvc: categoryService,
		CartSvc:     cartService,
		OrderSvc:    orderService,
		RatesSvc:    ratesService,
		ThemeSvc:    themeService,
		AdminSvc:    adminService,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
