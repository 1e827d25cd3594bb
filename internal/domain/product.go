package domain

import "time"

// Prices are whole Algerian dinars; the storefront never deals in fractions.

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
	Image       string    `json:"image,omitempty"`
	Images      []string  `json:"images,omitempty"`
	CategoryID  string    `json:"categoryId,omitempty"`
	Variants    []Variant `json:"variants,omitempty"`
	Rating      float64   `json:"rating,omitempty"`
	ReviewCount int       `json:"reviewCount,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Variant is a purchasable option of a product. A selected variant's price
// supersedes the product's base price for all downstream computation.
type Variant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
	Color string `json:"color,omitempty"`
	Image string `json:"image,omitempty"`
}

// EffectivePrice returns the variant price when a variant is selected,
// otherwise the product's base price.
func (p Product) EffectivePrice(v *Variant) int64 {
	if v != nil {
		return v.Price
	}
	return p.Price
}
