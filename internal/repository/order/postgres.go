package order

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

func (r *postgresRepo) Submit(ctx context.Context, o domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO orders (id, customer_name, phone, wilaya, commune, address, delivery_mode, delivery_fee, total, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
`, o.ID, o.CustomerName, o.Phone, o.Wilaya, o.Commune, o.Address, string(o.DeliveryMode), o.DeliveryFee, o.Total, string(o.Status), o.CreatedAt); err != nil {
		return err
	}

	for i, line := range o.Lines {
		var variantJSON []byte
		if line.Variant != nil {
			variantJSON, err = json.Marshal(line.Variant)
			if err != nil {
				return err
			}
		}
		if _, err := tx.Exec(ctx, `
INSERT INTO order_lines (order_id, product_id, product_name, unit_price, image, variant, quantity, position)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, o.ID, line.ProductID, line.ProductName, line.UnitPrice, line.Image, variantJSON, line.Quantity, i); err != nil {
			return err
		}
	}

	sale := domain.SaleFromOrder(o)
	if _, err := tx.Exec(ctx, `
INSERT INTO sales (id, date, amount, item_count)
VALUES ($1, $2, $3, $4)
`, sale.ID, sale.Date, sale.Amount, sale.ItemCount); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, customer_name, phone, wilaya, commune, address, delivery_mode, delivery_fee, total, status, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	var mode, status string
	if err := r.pool.QueryRow(ctx, q, id).Scan(
		&o.ID,
		&o.CustomerName,
		&o.Phone,
		&o.Wilaya,
		&o.Commune,
		&o.Address,
		&mode,
		&o.DeliveryFee,
		&o.Total,
		&status,
		&o.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	o.DeliveryMode = domain.DeliveryMode(mode)
	o.Status = domain.OrderStatus(status)

	lines, err := r.fetchLines(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Lines = lines
	return &o, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id::text, customer_name, phone, wilaya, commune, address, delivery_mode, delivery_fee, total, status, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		var mode, status string
		if err := rows.Scan(
			&o.ID,
			&o.CustomerName,
			&o.Phone,
			&o.Wilaya,
			&o.Commune,
			&o.Address,
			&mode,
			&o.DeliveryFee,
			&o.Total,
			&status,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		o.DeliveryMode = domain.DeliveryMode(mode)
		o.Status = domain.OrderStatus(status)
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		lines, err := r.fetchLines(ctx, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Lines = lines
	}
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE orders
SET status = $1
WHERE id = $2
`, string(status), id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) ListSales(ctx context.Context) ([]domain.SaleRecord, error) {
	const q = `
SELECT id::text, date, amount, item_count
FROM sales
ORDER BY date DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SaleRecord
	for rows.Next() {
		var s domain.SaleRecord
		if err := rows.Scan(&s.ID, &s.Date, &s.Amount, &s.ItemCount); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) fetchLines(ctx context.Context, orderID string) ([]domain.CartLine, error) {
	const q = `
SELECT product_id, product_name, unit_price, image, variant, quantity
FROM order_lines
WHERE order_id = $1
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []domain.CartLine
	for rows.Next() {
		var line domain.CartLine
		var variantJSON []byte
		if err := rows.Scan(&line.ProductID, &line.ProductName, &line.UnitPrice, &line.Image, &variantJSON, &line.Quantity); err != nil {
			return nil, err
		}
		if len(variantJSON) > 0 {
			var v domain.Variant
			if err := json.Unmarshal(variantJSON, &v); err != nil {
				r.logger.Printf("order %s: bad variant snapshot: %v", orderID, err)
			} else {
				line.Variant = &v
			}
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
