package rates

import (
	"context"

	"lumina-storefront/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.WilayaRate, error)
	Get(ctx context.Context, wilaya string) (*domain.WilayaRate, error)
	ReplaceAll(ctx context.Context, entries []domain.WilayaRate) error
}
