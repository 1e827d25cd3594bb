package importer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"lumina-storefront/internal/domain"
	"github.com/google/uuid"
)

// The legacy storefront kept the whole store in one JSON document (a single
// JSONB row, mirrored in the browser's local storage). Importer reads such a
// document and loads it into the relational schema.

type CategoryWriter interface {
	Create(ctx context.Context, c domain.Category) (*domain.Category, error)
}

type ProductWriter interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
}

type RatesWriter interface {
	ReplaceAll(ctx context.Context, entries []domain.WilayaRate) error
}

type ThemeWriter interface {
	Save(ctx context.Context, t domain.StoreTheme) error
}

type OrderWriter interface {
	Submit(ctx context.Context, o domain.Order) error
}

type Importer struct {
	reader     io.Reader
	categories CategoryWriter
	products   ProductWriter
	rates      RatesWriter
	theme      ThemeWriter
	orders     OrderWriter
	logger     *log.Logger
}

func New(r io.Reader, categories CategoryWriter, products ProductWriter, rates RatesWriter, theme ThemeWriter, orders OrderWriter, logger *log.Logger) *Importer {
	return &Importer{
		reader:     r,
		categories: categories,
		products:   products,
		rates:      rates,
		theme:      theme,
		orders:     orders,
		logger:     logger,
	}
}

type snapshot struct {
	Products       []legacyProduct    `json:"products"`
	Categories     []legacyCategory   `json:"categories"`
	Theme          *domain.StoreTheme `json:"theme"`
	DeliveryPrices []legacyRate       `json:"deliveryPrices"`
	Orders         []legacyOrder      `json:"orders"`
}

type legacyCategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

type legacyProduct struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       int64            `json:"price"`
	Image       string           `json:"image"`
	Images      []string         `json:"images"`
	Category    string           `json:"category"`
	CategoryID  string           `json:"categoryId"`
	Variants    []domain.Variant `json:"variants"`
}

type legacyRate struct {
	Wilaya   string `json:"wilaya"`
	Domicile int64  `json:"domicile"`
	Bureau   int64  `json:"bureau"`
}

type legacyOrder struct {
	ID           string       `json:"id"`
	CustomerName string       `json:"customerName"`
	Phone        string       `json:"phone"`
	Wilaya       string       `json:"wilaya"`
	Commune      string       `json:"commune"`
	Address      string       `json:"address"`
	DeliveryType string       `json:"deliveryType"`
	DeliveryFee  int64        `json:"deliveryFee"`
	Items        []legacyItem `json:"items"`
	Total        int64        `json:"total"`
	Status       string       `json:"status"`
	Date         string       `json:"date"`
}

type legacyItem struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Price           int64           `json:"price"`
	Image           string          `json:"image"`
	Quantity        int             `json:"quantity"`
	SelectedVariant *domain.Variant `json:"selectedVariant"`
}

// Counts reports how many entities of each kind were imported.
type Counts struct {
	Categories int
	Products   int
	Rates      int
	Orders     int
	Theme      bool
}

// Run decodes the snapshot and writes it entity by entity. Category and id
// references are remapped: the relational schema mints fresh UUIDs, so legacy
// ids survive only inside order line snapshots.
func (i *Importer) Run(ctx context.Context) (Counts, error) {
	var counts Counts

	var snap snapshot
	if err := json.NewDecoder(i.reader).Decode(&snap); err != nil {
		return counts, fmt.Errorf("decode snapshot: %w", err)
	}

	categoryIDs := make(map[string]string)
	for _, c := range snap.Categories {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		created, err := i.categories.Create(ctx, domain.Category{
			Name:        c.Name,
			Description: c.Description,
			Image:       c.Image,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				i.logger.Printf("category %q already present, skipping", c.Name)
				continue
			}
			return counts, fmt.Errorf("import category %q: %w", c.Name, err)
		}
		categoryIDs[c.ID] = created.ID
		categoryIDs[c.Name] = created.ID
		counts.Categories++
	}

	for _, p := range snap.Products {
		if strings.TrimSpace(p.Name) == "" {
			continue
		}
		categoryID := categoryIDs[p.CategoryID]
		if categoryID == "" {
			categoryID = categoryIDs[p.Category]
		}
		if _, err := i.products.Create(ctx, domain.Product{
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Image:       p.Image,
			Images:      p.Images,
			CategoryID:  categoryID,
			Variants:    p.Variants,
		}); err != nil {
			return counts, fmt.Errorf("import product %q: %w", p.Name, err)
		}
		counts.Products++
	}

	if len(snap.DeliveryPrices) > 0 {
		entries := make([]domain.WilayaRate, 0, len(snap.DeliveryPrices))
		for _, r := range snap.DeliveryPrices {
			entries = append(entries, domain.WilayaRate{
				Wilaya:    r.Wilaya,
				HomeFee:   r.Domicile,
				PickupFee: r.Bureau,
			})
		}
		if err := i.rates.ReplaceAll(ctx, entries); err != nil {
			return counts, fmt.Errorf("import delivery rates: %w", err)
		}
		counts.Rates = len(entries)
	}

	if snap.Theme != nil {
		if err := i.theme.Save(ctx, *snap.Theme); err != nil {
			return counts, fmt.Errorf("import theme: %w", err)
		}
		counts.Theme = true
	}

	for _, o := range snap.Orders {
		converted, err := convertOrder(o)
		if err != nil {
			i.logger.Printf("skipping order %s: %v", o.ID, err)
			continue
		}
		if err := i.orders.Submit(ctx, converted); err != nil {
			return counts, fmt.Errorf("import order %s: %w", o.ID, err)
		}
		counts.Orders++
	}

	return counts, nil
}

func convertOrder(o legacyOrder) (domain.Order, error) {
	if len(o.Items) == 0 {
		return domain.Order{}, fmt.Errorf("no line items")
	}

	mode := domain.DeliveryPickup
	if o.DeliveryType == "domicile" || o.DeliveryType == "home" {
		mode = domain.DeliveryHome
	}

	status := domain.OrderStatus(o.Status)
	if !status.Valid() {
		status = domain.StatusPending
	}

	createdAt := time.Now().UTC()
	if o.Date != "" {
		if t, err := time.Parse(time.RFC3339, o.Date); err == nil {
			createdAt = t
		}
	}

	lines := make([]domain.CartLine, 0, len(o.Items))
	for _, item := range o.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		price := item.Price
		if item.SelectedVariant != nil {
			price = item.SelectedVariant.Price
		}
		lines = append(lines, domain.CartLine{
			ProductID:   item.ID,
			ProductName: item.Name,
			UnitPrice:   price,
			Image:       item.Image,
			Variant:     item.SelectedVariant,
			Quantity:    qty,
		})
	}

	return domain.Order{
		ID:           uuid.NewString(),
		CustomerName: o.CustomerName,
		Phone:        o.Phone,
		Wilaya:       o.Wilaya,
		Commune:      o.Commune,
		Address:      o.Address,
		DeliveryMode: mode,
		DeliveryFee:  o.DeliveryFee,
		Lines:        lines,
		Total:        o.Total,
		Status:       status,
		CreatedAt:    createdAt,
	}, nil
}
