package product

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"lumina-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Product, error) {
	const q = `
SELECT id::text, name, description, price, image, images, category_id::text, rating, review_count, created_at
FROM products
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		variants, err := r.fetchVariants(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Variants = variants
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	const q = `
SELECT id::text, name, description, price, image, images, category_id::text, rating, review_count, created_at
FROM products
WHERE id = $1
`
	row := r.pool.QueryRow(ctx, q, id)
	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	variants, err := r.fetchVariants(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Variants = variants
	return p, nil
}

func (r *postgresRepo) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	images, err := json.Marshal(imagesOrEmpty(p.Images))
	if err != nil {
		return nil, err
	}

	const q = `
INSERT INTO products (name, description, price, image, images, category_id, rating, review_count)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, '')::uuid, $7, $8)
RETURNING id::text, created_at
`
	if err := tx.QueryRow(ctx, q, p.Name, p.Description, p.Price, p.Image, images, p.CategoryID, p.Rating, p.ReviewCount).
		Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, err
	}

	if err := replaceVariants(ctx, tx, p.ID, p.Variants); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *postgresRepo) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	images, err := json.Marshal(imagesOrEmpty(p.Images))
	if err != nil {
		return nil, err
	}

	const q = `
UPDATE products
SET name = $1,
    description = $2,
    price = $3,
    image = $4,
    images = $5,
    category_id = NULLIF($6, '')::uuid,
    rating = $7,
    review_count = $8
WHERE id = $9
`
	cmd, err := tx.Exec(ctx, q, p.Name, p.Description, p.Price, p.Image, images, p.CategoryID, p.Rating, p.ReviewCount, p.ID)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}

	if err := replaceVariants(ctx, tx, p.ID, p.Variants); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, p.ID)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) fetchVariants(ctx context.Context, productID string) ([]domain.Variant, error) {
	const q = `
SELECT id::text, name, price, stock, color, image
FROM product_variants
WHERE product_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, q, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variants []domain.Variant
	for rows.Next() {
		var v domain.Variant
		if err := rows.Scan(&v.ID, &v.Name, &v.Price, &v.Stock, &v.Color, &v.Image); err != nil {
			return nil, err
		}
		variants = append(variants, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return variants, nil
}

// replaceVariants rewrites the variant list; variant identity is regenerated
// on every product save, matching the admin form's whole-product submit.
func replaceVariants(ctx context.Context, tx pgx.Tx, productID string, variants []domain.Variant) error {
	if _, err := tx.Exec(ctx, `DELETE FROM product_variants WHERE product_id = $1`, productID); err != nil {
		return err
	}
	for i, v := range variants {
		if _, err := tx.Exec(ctx, `
INSERT INTO product_variants (product_id, name, price, stock, color, image, position)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, productID, v.Name, v.Price, v.Stock, v.Color, v.Image, i); err != nil {
			return err
		}
	}
	return nil
}

func imagesOrEmpty(images []string) []string {
	if images == nil {
		return []string{}
	}
	return images
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	var categoryID *string
	var images []byte
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Image,
		&images,
		&categoryID,
		&p.Rating,
		&p.ReviewCount,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	if len(images) > 0 {
		_ = json.Unmarshal(images, &p.Images)
	}
	return &p, nil
}
