package cart

import "fmt"

// Pricing carries the checkout policy. Rates are always injected, with the
// restaurant settings document as the canonical source.
type Pricing struct {
	TaxRate               float64 `json:"tax_rate"`
	DeliveryFee           float64 `json:"delivery_fee"`
	FreeDeliveryThreshold float64 `json:"free_delivery_threshold"`
}

type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"delivery_fee"`
	Total       float64 `json:"total"`
	ItemCount   int     `json:"item_count"`
}

// Totals derives the priced totals from a snapshot. The delivery fee is
// waived once the subtotal reaches the free-delivery threshold, and an empty
// cart is priced at zero across the board.
func (p Pricing) Totals(snap Snapshot) Totals {
	t := Totals{
		Subtotal:  snap.Subtotal,
		ItemCount: snap.ItemCount,
	}
	if snap.ItemCount == 0 {
		return t
	}
	t.Tax = snap.Subtotal * p.TaxRate
	if snap.Subtotal < p.FreeDeliveryThreshold {
		t.DeliveryFee = p.DeliveryFee
	}
	t.Total = t.Subtotal + t.Tax + t.DeliveryFee
	return t
}

// FormatPrice renders an amount for display. Rounding happens only here,
// never inside the subtotal accumulation.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("€%.2f", amount)
}
