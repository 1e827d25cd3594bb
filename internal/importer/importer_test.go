package importer

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"lumina-storefront/internal/domain"
)

type recordingStore struct {
	categories []domain.Category
	products   []domain.Product
	rates      []domain.WilayaRate
	theme      *domain.StoreTheme
	orders     []domain.Order
	nextID     int
	dupNames   map[string]bool
}

func (s *recordingStore) createCategory(_ context.Context, c domain.Category) (*domain.Category, error) {
	if s.dupNames[c.Name] {
		return nil, domain.ErrAlreadyExists
	}
	s.nextID++
	c.ID = fmt.Sprintf("cat-%d", s.nextID)
	s.categories = append(s.categories, c)
	return &c, nil
}

type categoryAdapter struct{ s *recordingStore }

func (a categoryAdapter) Create(ctx context.Context, c domain.Category) (*domain.Category, error) {
	return a.s.createCategory(ctx, c)
}

type productAdapter struct{ s *recordingStore }

func (a productAdapter) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	a.s.products = append(a.s.products, p)
	return &p, nil
}

type ratesAdapter struct{ s *recordingStore }

func (a ratesAdapter) ReplaceAll(_ context.Context, entries []domain.WilayaRate) error {
	a.s.rates = entries
	return nil
}

type themeAdapter struct{ s *recordingStore }

func (a themeAdapter) Save(_ context.Context, t domain.StoreTheme) error {
	a.s.theme = &t
	return nil
}

type orderAdapter struct{ s *recordingStore }

func (a orderAdapter) Submit(_ context.Context, o domain.Order) error {
	a.s.orders = append(a.s.orders, o)
	return nil
}

func newTestImporter(r io.Reader, s *recordingStore) *Importer {
	logger := log.New(io.Discard, "", 0)
	return New(r, categoryAdapter{s}, productAdapter{s}, ratesAdapter{s}, themeAdapter{s}, orderAdapter{s}, logger)
}

const sampleSnapshot = `{
  "categories": [
    {"id": "legacy-1", "name": "Perfumes", "description": "Scents", "image": "perf.jpg"},
    {"id": "legacy-2", "name": ""}
  ],
  "products": [
    {"id": "p-1", "name": "Oud", "price": 18500, "categoryId": "legacy-1"},
    {"id": "p-2", "name": "Tunic", "price": 24000, "category": "Perfumes"},
    {"id": "p-3", "name": ""}
  ],
  "deliveryPrices": [
    {"wilaya": "16 - Alger", "domicile": 400, "bureau": 250},
    {"wilaya": "01 - Adrar", "domicile": 700, "bureau": 400}
  ],
  "theme": {"storeName": "Legacy Boutique", "primaryColor": "#ffd700", "accentColor": "#000", "language": "fr"},
  "orders": [
    {
      "id": "old-1",
      "customerName": "Amine K.",
      "phone": "0551234567",
      "wilaya": "16 - Alger",
      "deliveryType": "domicile",
      "deliveryFee": 400,
      "total": 18900,
      "status": "livré",
      "date": "2023-11-04T10:30:00Z",
      "items": [
        {"id": "p-1", "name": "Oud", "price": 18500, "quantity": 0}
      ]
    },
    {"id": "old-2", "deliveryType": "bureau", "items": []}
  ]
}`

func TestRunImportsSnapshot(t *testing.T) {
	store := &recordingStore{}
	imp := newTestImporter(strings.NewReader(sampleSnapshot), store)

	counts, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if counts.Categories != 1 || len(store.categories) != 1 {
		t.Fatalf("expected 1 imported category, got %+v", counts)
	}
	if counts.Products != 2 || len(store.products) != 2 {
		t.Fatalf("expected 2 imported products (blank name skipped), got %+v", counts)
	}
	if counts.Rates != 2 || len(store.rates) != 2 {
		t.Fatalf("expected 2 imported rates, got %+v", counts)
	}
	if !counts.Theme || store.theme == nil || store.theme.StoreName != "Legacy Boutique" {
		t.Fatalf("theme not imported: %+v", store.theme)
	}
	if counts.Orders != 1 || len(store.orders) != 1 {
		t.Fatalf("expected 1 imported order (itemless skipped), got %+v", counts)
	}
}

func TestRunRemapsCategoryReferences(t *testing.T) {
	store := &recordingStore{}
	imp := newTestImporter(strings.NewReader(sampleSnapshot), store)

	if _, err := imp.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newID := store.categories[0].ID
	// p-1 referenced the category by legacy id, p-2 by name; both must land
	// on the freshly minted id.
	for _, p := range store.products {
		if p.CategoryID != newID {
			t.Fatalf("product %q category not remapped: %q != %q", p.Name, p.CategoryID, newID)
		}
	}
}

func TestRunSkipsDuplicateCategories(t *testing.T) {
	store := &recordingStore{dupNames: map[string]bool{"Perfumes": true}}
	imp := newTestImporter(strings.NewReader(sampleSnapshot), store)

	counts, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("duplicate category must not abort the import: %v", err)
	}
	if counts.Categories != 0 {
		t.Fatalf("duplicate should not count as imported, got %d", counts.Categories)
	}
}

func TestRunConvertsLegacyRateFields(t *testing.T) {
	store := &recordingStore{}
	imp := newTestImporter(strings.NewReader(sampleSnapshot), store)

	if _, err := imp.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.rates[0].Wilaya != "16 - Alger" || store.rates[0].HomeFee != 400 || store.rates[0].PickupFee != 250 {
		t.Fatalf("domicile/bureau not mapped to home/pickup: %+v", store.rates[0])
	}
}

func TestRunFailsOnMalformedDocument(t *testing.T) {
	imp := newTestImporter(strings.NewReader("{not json"), &recordingStore{})
	if _, err := imp.Run(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestConvertOrder(t *testing.T) {
	variant := &domain.Variant{ID: "v1", Name: "100ml", Price: 21000}
	o, err := convertOrder(legacyOrder{
		ID:           "old-1",
		CustomerName: "Amine K.",
		Phone:        "0551234567",
		Wilaya:       "16 - Alger",
		DeliveryType: "domicile",
		DeliveryFee:  400,
		Total:        21400,
		Status:       "livré",
		Date:         "2023-11-04T10:30:00Z",
		Items: []legacyItem{
			{ID: "p-1", Name: "Oud", Price: 18500, Quantity: 0, SelectedVariant: variant},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if o.ID == "old-1" || o.ID == "" {
		t.Fatalf("converted order must get a fresh id, got %q", o.ID)
	}
	if o.DeliveryMode != domain.DeliveryHome {
		t.Fatalf("domicile should map to home delivery, got %s", o.DeliveryMode)
	}
	if o.Status != domain.StatusPending {
		t.Fatalf("unknown legacy status should fall back to pending, got %s", o.Status)
	}
	want := time.Date(2023, 11, 4, 10, 30, 0, 0, time.UTC)
	if !o.CreatedAt.Equal(want) {
		t.Fatalf("date not parsed: %v", o.CreatedAt)
	}
	line := o.Lines[0]
	if line.Quantity != 1 {
		t.Fatalf("zero quantity should clamp to 1, got %d", line.Quantity)
	}
	if line.UnitPrice != 21000 {
		t.Fatalf("variant price should supersede base price, got %d", line.UnitPrice)
	}
}

func TestConvertOrderRejectsEmpty(t *testing.T) {
	if _, err := convertOrder(legacyOrder{ID: "old-2"}); err == nil {
		t.Fatalf("expected error for order with no items")
	}
}
