package theme

import (
	"context"

	"lumina-storefront/internal/domain"
)

type Repository interface {
	Get(ctx context.Context) (*domain.StoreTheme, error)
	Save(ctx context.Context, t domain.StoreTheme) error
}
