package category

import (
	"context"
	"strings"

	"lumina-storefront/internal/domain"
	categoryrepo "lumina-storefront/internal/repository/category"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, c domain.Category) (*domain.Category, error) {
	if strings.TrimSpace(c.ID) == "" {
		return nil, &domain.ValidationError{Field: "id", Reason: "required"}
	}
	if strings.TrimSpace(c.Name) == "" {
		return nil, &domain.ValidationError{Field: "name", Reason: "required"}
	}
	return s.repo.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
