package product

import (
	"context"
	"strings"

	"lumina-storefront/internal/domain"
	productrepo "lumina-storefront/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(p.ID) == "" {
		return nil, &domain.ValidationError{Field: "id", Reason: "required"}
	}
	if err := validate(p); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validate(p domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "required"}
	}
	if p.Price < 0 {
		return &domain.ValidationError{Field: "price", Reason: "must be non-negative"}
	}
	for _, v := range p.Variants {
		if strings.TrimSpace(v.Name) == "" {
			return &domain.ValidationError{Field: "variant.name", Reason: "required"}
		}
		if v.Price < 0 {
			return &domain.ValidationError{Field: "variant.price", Reason: "must be non-negative"}
		}
	}
	return nil
}
