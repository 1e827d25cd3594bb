package rates

import (
	"context"
	"fmt"
	"log"
	"strings"

	"lumina-storefront/internal/domain"
	ratesrepo "lumina-storefront/internal/repository/rates"
)

// Service resolves delivery fees and manages the admin rate table.
type Service struct {
	repo   ratesrepo.Repository
	logger *log.Logger
}

func New(repo ratesrepo.Repository, logger *log.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ResolveFee returns the delivery fee for the region and mode. An empty cart
// costs nothing to deliver. An unknown region also resolves to 0 — the
// historical behavior, kept as-is but logged because it silently
// under-charges when the rate table has a gap.
func (s *Service) ResolveFee(ctx context.Context, wilaya string, mode domain.DeliveryMode, cartIsEmpty bool) (int64, error) {
	if cartIsEmpty {
		return 0, nil
	}
	rate, err := s.repo.Get(ctx, wilaya)
	if err != nil {
		if err == domain.ErrNotFound {
			if s.logger != nil {
				s.logger.Printf("WARN no delivery rate for wilaya %q, charging 0", wilaya)
			}
			return 0, nil
		}
		return 0, err
	}
	return rate.Fee(mode), nil
}

// List returns the full rate table.
func (s *Service) List(ctx context.Context) ([]domain.WilayaRate, error) {
	return s.repo.List(ctx)
}

// Replace validates and atomically overwrites the whole rate table.
func (s *Service) Replace(ctx context.Context, entries []domain.WilayaRate) error {
	if len(entries) == 0 {
		return &domain.ValidationError{Field: "rates", Reason: "at least one entry required"}
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Wilaya)
		if name == "" {
			return &domain.ValidationError{Field: "wilaya", Reason: "name required"}
		}
		if e.HomeFee < 0 || e.PickupFee < 0 {
			return &domain.ValidationError{Field: "fee", Reason: fmt.Sprintf("negative fee for %s", name)}
		}
		if seen[name] {
			return &domain.ValidationError{Field: "wilaya", Reason: fmt.Sprintf("duplicate entry %s", name)}
		}
		seen[name] = true
	}
	return s.repo.ReplaceAll(ctx, entries)
}
