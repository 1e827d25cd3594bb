package order

import (
	"context"

	"lumina-storefront/internal/domain"
)

type Repository interface {
	// Submit appends the order and its derived sale record in one transaction.
	Submit(ctx context.Context, o domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error
	ListSales(ctx context.Context) ([]domain.SaleRecord, error)
}
