package theme

import (
	"context"
	"errors"

	"lumina-storefront/internal/domain"
	themerepo "lumina-storefront/internal/repository/theme"
)

// Service stores the branding document. Partial updates go through typed
// patches with per-field precedence; a patch is read-modify-write and the
// save commits the whole document in one write.
type Service struct {
	repo themerepo.Repository
}

func New(repo themerepo.Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the stored theme, falling back to the default branding when
// none was ever saved.
func (s *Service) Get(ctx context.Context) (domain.StoreTheme, error) {
	t, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultTheme(), nil
		}
		return domain.StoreTheme{}, err
	}
	return *t, nil
}

// Patch merges the typed patch into the current theme and saves the result.
func (s *Service) Patch(ctx context.Context, p domain.ThemePatch) (domain.StoreTheme, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return domain.StoreTheme{}, err
	}
	next := p.Apply(current)
	if err := s.repo.Save(ctx, next); err != nil {
		return domain.StoreTheme{}, err
	}
	return next, nil
}
