package seed

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"lumina-storefront/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Apply inserts the default rate table and a small demo catalog for manual
// testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	for _, rate := range DefaultRates() {
		if err := upsertRate(ctx, pool, rate); err != nil {
			return fmt.Errorf("upsert rate %s: %w", rate.Wilaya, err)
		}
	}

	categories := []domain.Category{
		{Name: "Perfumes"},
		{Name: "Apparel"},
		{Name: "Accessories"},
	}
	ids := make(map[string]string, len(categories))
	for _, c := range categories {
		id, err := ensureCategory(ctx, pool, c)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", c.Name, err)
		}
		ids[c.Name] = id
	}

	products := []struct {
		domain.Product
		category string
	}{
		{
			Product: domain.Product{
				Name:        "Sahara Twilight Oud",
				Description: "A rich, deep scent capturing the essence of an Algerian night in the desert. Notes of agarwood, smoke, and wild jasmine.",
				Price:       18500,
			},
			category: "Perfumes",
		},
		{
			Product: domain.Product{
				Name:        "Royal Kabyle Tunic",
				Description: "Hand-embroidered silk tunic inspired by traditional Berber patterns. Reimagined for the modern aesthetic.",
				Price:       24000,
			},
			category: "Apparel",
		},
	}
	for _, p := range products {
		p.CategoryID = ids[p.category]
		if err := upsertProduct(ctx, pool, p.Product); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

// DefaultRates builds the 58-wilaya fee table with the historical tiers:
// the capital is cheapest, its neighbors slightly above, the deep south
// most expensive, everywhere else the standard rate.
func DefaultRates() []domain.WilayaRate {
	nearCapital := map[int]bool{9: true, 15: true, 35: true, 42: true}
	rates := make([]domain.WilayaRate, 0, len(domain.Wilayas))
	for _, w := range domain.Wilayas {
		code, _ := strconv.Atoi(strings.SplitN(w, " - ", 2)[0])
		var home, pickup int64 = 700, 400
		switch {
		case code == 16:
			home, pickup = 400, 250
		case nearCapital[code]:
			home, pickup = 500, 300
		case code > 48:
			home, pickup = 1200, 800
		}
		rates = append(rates, domain.WilayaRate{Wilaya: w, HomeFee: home, PickupFee: pickup})
	}
	return rates
}

func upsertRate(ctx context.Context, pool *pgxpool.Pool, r domain.WilayaRate) error {
	const q = `
INSERT INTO delivery_rates (wilaya, home_fee, pickup_fee)
VALUES ($1, $2, $3)
ON CONFLICT (wilaya) DO NOTHING
`
	_, err := pool.Exec(ctx, q, r.Wilaya, r.HomeFee, r.PickupFee)
	return err
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, c domain.Category) (string, error) {
	const q = `
INSERT INTO categories (name, description, image)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE SET description = EXCLUDED.description
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, c.Name, c.Description, c.Image).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p domain.Product) error {
	const q = `
INSERT INTO products (name, description, price, image, category_id)
SELECT $1, $2, $3, $4, NULLIF($5, '')::uuid
WHERE NOT EXISTS (SELECT 1 FROM products WHERE name = $1)
`
	_, err := pool.Exec(ctx, q, p.Name, p.Description, p.Price, p.Image, p.CategoryID)
	return err
}
