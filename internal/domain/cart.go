package domain

// CartLine is one product/variant/quantity triple in a session cart. Product
// and variant fields are snapshots taken at add time so the cart keeps
// rendering even if the catalog changes underneath it.
type CartLine struct {
	ProductID   string   `json:"productId"`
	ProductName string   `json:"productName"`
	UnitPrice   int64    `json:"unitPrice"`
	Image       string   `json:"image,omitempty"`
	Variant     *Variant `json:"variant,omitempty"`
	Quantity    int      `json:"quantity"`
}

// LineTotal is the line's contribution to the cart subtotal.
func (l CartLine) LineTotal() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// Cart is the in-memory state of one shopping session.
type Cart struct {
	SessionID string     `json:"sessionId"`
	Lines     []CartLine `json:"lines"`
}

// Subtotal sums unit price times quantity over all lines. The unit price
// already reflects the selected variant's override.
func (c Cart) Subtotal() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.LineTotal()
	}
	return total
}

// ItemCount sums line quantities.
func (c Cart) ItemCount() int {
	count := 0
	for _, l := range c.Lines {
		count += l.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
