package main

import (
	"context"
	"flag"
	"log"
	"os"

	"lumina-storefront/internal/config"
	"lumina-storefront/internal/db"
	"lumina-storefront/internal/importer"
	categoryrepo "lumina-storefront/internal/repository/category"
	orderrepo "lumina-storefront/internal/repository/order"
	productrepo "lumina-storefront/internal/repository/product"
	ratesrepo "lumina-storefront/internal/repository/rates"
	themerepo "lumina-storefront/internal/repository/theme"
)

func main() {
	path := flag.String("file", "", "path to legacy store snapshot JSON")
	flag.Parse()

	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	if *path == "" {
		logger.Fatal("usage: importer -file <snapshot.json>")
	}

	f, err := os.Open(*path)
	if err != nil {
		logger.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()

	cfg := config.FromEnv()
	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	imp := importer.New(
		f,
		categoryrepo.NewPostgres(pool),
		productrepo.NewPostgres(pool, logger),
		ratesrepo.NewPostgres(pool),
		themerepo.NewPostgres(pool),
		orderrepo.NewPostgres(pool, logger),
		logger,
	)

	counts, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import: %v", err)
	}
	logger.Printf("imported %d categories, %d products, %d rates, %d orders (theme: %v)",
		counts.Categories, counts.Products, counts.Rates, counts.Orders, counts.Theme)
}
