package theme

import (
	"context"
	"encoding/json"
	"errors"

	"lumina-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// The theme is stored as a single JSONB document row, the same shape the
// legacy store kept in its store_config blob.

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context) (*domain.StoreTheme, error) {
	const q = `
SELECT data
FROM store_theme
WHERE id = 1
`
	var data []byte
	if err := r.pool.QueryRow(ctx, q).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var t domain.StoreTheme
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Save persists the full theme document in one logical write.
func (r *postgresRepo) Save(ctx context.Context, t domain.StoreTheme) error {
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO store_theme (id, data, updated_at)
VALUES (1, $1, now())
ON CONFLICT (id) DO UPDATE
SET data = EXCLUDED.data,
    updated_at = now()
`, data)
	return err
}
