package cart

import (
	"context"
	"errors"
	"sync"

	"lumina-storefront/internal/domain"
)

// Service keeps per-session carts in memory. A session has a single actor,
// but the map itself is shared across requests, so every access goes through
// the mutex. Carts do not survive a process restart; durability begins at
// order submission.
type Service struct {
	mu       sync.RWMutex
	carts    map[string][]domain.CartLine
	products productRepo
}

type productRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(products productRepo) *Service {
	return &Service{
		carts:    make(map[string][]domain.CartLine),
		products: products,
	}
}

// Get returns a snapshot of the session's cart. Unknown sessions yield an
// empty cart rather than an error; the first AddLine creates the state.
func (s *Service) Get(sessionID string) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Cart{SessionID: sessionID, Lines: copyLines(s.carts[sessionID])}
}

// AddLine resolves the product (and optional variant), then merges into an
// existing line with the same product+variant or appends a new line with
// quantity 1.
func (s *Service) AddLine(ctx context.Context, sessionID, productID, variantID string) (domain.Cart, error) {
	if s.products == nil {
		return domain.Cart{}, errors.New("product repository unavailable")
	}
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return domain.Cart{}, err
	}

	var variant *domain.Variant
	if variantID != "" {
		for i := range p.Variants {
			if p.Variants[i].ID == variantID {
				v := p.Variants[i]
				variant = &v
				break
			}
		}
		if variant == nil {
			return domain.Cart{}, domain.ErrNotFound
		}
	}

	line := domain.CartLine{
		ProductID:   p.ID,
		ProductName: p.Name,
		UnitPrice:   p.EffectivePrice(variant),
		Image:       p.Image,
		Variant:     variant,
		Quantity:    1,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sessionID]
	for i := range lines {
		if lines[i].ProductID == line.ProductID && sameVariant(lines[i].Variant, variant) {
			lines[i].Quantity++
			return domain.Cart{SessionID: sessionID, Lines: copyLines(lines)}, nil
		}
	}
	lines = append(lines, line)
	s.carts[sessionID] = lines
	return domain.Cart{SessionID: sessionID, Lines: copyLines(lines)}, nil
}

// RemoveLine drops the line at the given position. Out-of-range indexes are
// a no-op, mirroring the storefront UI which can only click existing rows.
func (s *Service) RemoveLine(sessionID string, index int) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	lines := s.carts[sessionID]
	if index >= 0 && index < len(lines) {
		lines = append(lines[:index], lines[index+1:]...)
		s.carts[sessionID] = lines
	}
	return domain.Cart{SessionID: sessionID, Lines: copyLines(lines)}
}

// Clear empties the session's cart.
func (s *Service) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}

func sameVariant(a, b *domain.Variant) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID == b.ID
}

// copyLines always returns a non-nil slice so carts serialize with an empty
// lines array rather than null.
func copyLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].Variant != nil {
			v := *out[i].Variant
			out[i].Variant = &v
		}
	}
	return out
}
