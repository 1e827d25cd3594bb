package domain

import "time"

// OrderStatus is the admin-controlled lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusShipped   OrderStatus = "shipped"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the recognized statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is expected from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// DeliveryMode selects between door delivery and pickup-point collection.
type DeliveryMode string

const (
	DeliveryHome   DeliveryMode = "home"
	DeliveryPickup DeliveryMode = "pickup"
)

func (m DeliveryMode) Valid() bool {
	return m == DeliveryHome || m == DeliveryPickup
}

// Order is the immutable financial snapshot taken at checkout. Total is fixed
// at creation and never recomputed, even if prices or rates later change.
// Orders are append-only; only Status is ever mutated.
type Order struct {
	ID           string       `json:"id"`
	CustomerName string       `json:"customerName"`
	Phone        string       `json:"phone"`
	Wilaya       string       `json:"wilaya"`
	Commune      string       `json:"commune"`
	Address      string       `json:"address,omitempty"`
	DeliveryMode DeliveryMode `json:"deliveryMode"`
	DeliveryFee  int64        `json:"deliveryFee"`
	Lines        []CartLine   `json:"lines"`
	Total        int64        `json:"total"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    time.Time    `json:"createdAt"`
}

// SaleRecord is derived 1:1 from an Order at submission for aggregate
// reporting. Never mutated after creation.
type SaleRecord struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Amount    int64     `json:"amount"`
	ItemCount int       `json:"itemCount"`
}

// SaleFromOrder derives the reporting record for a submitted order.
func SaleFromOrder(o Order) SaleRecord {
	count := 0
	for _, l := range o.Lines {
		count += l.Quantity
	}
	return SaleRecord{
		ID:        o.ID,
		Date:      o.CreatedAt,
		Amount:    o.Total,
		ItemCount: count,
	}
}
