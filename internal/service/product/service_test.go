package product

import (
	"context"
	"testing"

	"lumina-storefront/internal/domain"
)

type stubRepo struct {
	created *domain.Product
	updated *domain.Product
	deleted string
}

func (s *stubRepo) List(_ context.Context) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubRepo) GetByID(_ context.Context, _ string) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.created = &p
	return &p, nil
}

func (s *stubRepo) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	s.updated = &p
	return &p, nil
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	s.deleted = id
	return nil
}

func TestCreateValidation(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	cases := []struct {
		name string
		p    domain.Product
	}{
		{"blank name", domain.Product{Name: "   ", Price: 100}},
		{"negative price", domain.Product{Name: "Oud", Price: -1}},
		{"blank variant name", domain.Product{Name: "Oud", Price: 100, Variants: []domain.Variant{{Name: ""}}}},
		{"negative variant price", domain.Product{Name: "Oud", Price: 100, Variants: []domain.Variant{{Name: "50ml", Price: -5}}}},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), tc.p); !domain.IsValidation(err) {
			t.Fatalf("%s: expected validation error, got %v", tc.name, err)
		}
	}
	if repo.created != nil {
		t.Fatalf("nothing should reach the repo on validation failure")
	}
}

func TestCreateForwardsToRepo(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)

	p := domain.Product{
		Name:  "Sahara Twilight Oud",
		Price: 18500,
		Variants: []domain.Variant{
			{ID: "v1", Name: "50ml", Price: 18500, Stock: 10},
			{ID: "v2", Name: "100ml", Price: 31000, Stock: 4},
		},
	}
	created, err := svc.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created == nil || created.Name != p.Name {
		t.Fatalf("product not forwarded: %+v", repo.created)
	}
}

func TestUpdateRequiresID(t *testing.T) {
	svc := New(&stubRepo{})
	_, err := svc.Update(context.Background(), domain.Product{Name: "Oud", Price: 100})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateForwards(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	_, err := svc.Update(context.Background(), domain.Product{ID: "p1", Name: "Oud", Price: 200})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.updated == nil || repo.updated.Price != 200 {
		t.Fatalf("update not forwarded: %+v", repo.updated)
	}
}

func TestDeleteForwards(t *testing.T) {
	repo := &stubRepo{}
	svc := New(repo)
	if err := svc.Delete(context.Background(), "p1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deleted != "p1" {
		t.Fatalf("delete not forwarded: %q", repo.deleted)
	}
}
