package rates

import (
	"context"
	"errors"

	"lumina-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.WilayaRate, error) {
	const q = `
SELECT wilaya, home_fee, pickup_fee
FROM delivery_rates
ORDER BY wilaya ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.WilayaRate
	for rows.Next() {
		var rate domain.WilayaRate
		if err := rows.Scan(&rate.Wilaya, &rate.HomeFee, &rate.PickupFee); err != nil {
			return nil, err
		}
		result = append(result, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Get(ctx context.Context, wilaya string) (*domain.WilayaRate, error) {
	const q = `
SELECT wilaya, home_fee, pickup_fee
FROM delivery_rates
WHERE wilaya = $1
`
	var rate domain.WilayaRate
	if err := r.pool.QueryRow(ctx, q, wilaya).Scan(&rate.Wilaya, &rate.HomeFee, &rate.PickupFee); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// ReplaceAll overwrites the full table in one transaction so the admin save
// is atomic from the caller's perspective.
func (r *postgresRepo) ReplaceAll(ctx context.Context, entries []domain.WilayaRate) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, e := range entries {
		if _, err := tx.Exec(ctx, `
INSERT INTO delivery_rates (wilaya, home_fee, pickup_fee, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (wilaya) DO UPDATE
SET home_fee = EXCLUDED.home_fee,
    pickup_fee = EXCLUDED.pickup_fee,
    updated_at = now()
`, e.Wilaya, e.HomeFee, e.PickupFee); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
