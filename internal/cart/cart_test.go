package cart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	margherita = Product{ID: "item-1", Name: "Pizza Margherita", Price: 14.50, Category: "pizza"}
	diavola    = Product{ID: "item-2", Name: "Pizza Diavola", Price: 18.00, Category: "pizza"}
	tiramisu   = Product{ID: "item-3", Name: "Tiramisu", Price: 6.50, Category: "dessert"}
)

func TestCart_AddItem(t *testing.T) {
	c := New(Pricing{})

	snap := c.AddItem(margherita, 1)
	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 14.50, snap.Subtotal)
	assert.Equal(t, 1, snap.ItemCount)

	snap = c.AddItem(margherita, 2)
	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 3, snap.Lines[0].Quantity)
	assert.Equal(t, 3, snap.ItemCount)

	snap = c.AddItem(diavola, 1)
	assert.Len(t, snap.Lines, 2)
	assert.Equal(t, "item-1", snap.Lines[0].ProductID)
	assert.Equal(t, "item-2", snap.Lines[1].ProductID)
}

func TestCart_AddItem_ClampsQuantity(t *testing.T) {
	c := New(Pricing{})

	snap := c.AddItem(margherita, 0)
	assert.Equal(t, 1, snap.ItemCount)

	snap = c.AddItem(diavola, -5)
	assert.Equal(t, 1, snap.Lines[1].Quantity)
}

func TestCart_AddItem_RejectsMalformedProduct(t *testing.T) {
	c := New(Pricing{})
	c.AddItem(margherita, 1)

	before := c.Snapshot()

	c.AddItem(Product{ID: "bad", Price: -1}, 1)
	c.AddItem(Product{ID: "bad", Price: math.NaN()}, 1)
	c.AddItem(Product{Price: 10}, 1)

	assert.Equal(t, before, c.Snapshot())
}

func TestCart_UpdateQuantity(t *testing.T) {
	c := New(Pricing{})
	c.AddItem(margherita, 1)
	c.AddItem(diavola, 1)

	snap := c.UpdateQuantity("item-2", 3)
	assert.Equal(t, 3, snap.Lines[1].Quantity)
	assert.InDelta(t, 14.50+54.00, snap.Subtotal, 1e-9)

	// unknown id is a silent no-op
	assert.Equal(t, snap, c.UpdateQuantity("missing", 5))
}

func TestCart_UpdateQuantityToZero_EqualsRemove(t *testing.T) {
	a := New(Pricing{})
	a.AddItem(margherita, 2)
	a.AddItem(diavola, 1)

	b := New(Pricing{})
	b.AddItem(margherita, 2)
	b.AddItem(diavola, 1)

	assert.Equal(t, a.UpdateQuantity("item-1", 0), b.RemoveItem("item-1"))
}

func TestCart_RemoveItem_Idempotent(t *testing.T) {
	c := New(Pricing{})
	c.AddItem(margherita, 1)
	c.AddItem(tiramisu, 2)

	first := c.RemoveItem("item-1")
	second := c.RemoveItem("item-1")

	assert.Equal(t, first, second)
	assert.Len(t, second.Lines, 1)
	assert.Equal(t, "item-3", second.Lines[0].ProductID)
}

func TestCart_Clear(t *testing.T) {
	c := New(Pricing{})
	c.AddItem(margherita, 3)
	c.AddItem(diavola, 1)

	snap := c.Clear()
	assert.Empty(t, snap.Lines)
	assert.Zero(t, snap.Subtotal)
	assert.Zero(t, snap.ItemCount)
}

func TestCart_SubtotalNeverDrifts(t *testing.T) {
	c := New(Pricing{})

	c.AddItem(margherita, 1)
	c.AddItem(diavola, 2)
	c.UpdateQuantity("item-1", 4)
	c.AddItem(tiramisu, 1)
	c.RemoveItem("item-2")
	c.UpdateQuantity("item-3", 3)
	c.AddItem(diavola, 1)

	snap := c.Snapshot()

	expected := 0.0
	count := 0
	for _, line := range snap.Lines {
		expected += line.UnitPrice * float64(line.Quantity)
		count += line.Quantity
	}
	assert.Equal(t, expected, snap.Subtotal)
	assert.Equal(t, count, snap.ItemCount)
	assert.GreaterOrEqual(t, snap.ItemCount, 0)
}

func TestCart_ObserversNotifiedSynchronously(t *testing.T) {
	c := New(Pricing{})

	var seen []Snapshot
	c.Subscribe(func(snap Snapshot) {
		seen = append(seen, snap)
	})

	c.AddItem(margherita, 1)
	c.UpdateQuantity("item-1", 2)
	c.RemoveItem("item-1")

	assert.Len(t, seen, 3)
	assert.Equal(t, 1, seen[0].ItemCount)
	assert.Equal(t, 2, seen[1].ItemCount)
	assert.Equal(t, 0, seen[2].ItemCount)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	state := State{Lines: []Line{{ProductID: "item-1", Name: "Pizza", UnitPrice: 9.50, Quantity: 2}}}

	next := Reduce(state, UpdateQuantity{ProductID: "item-1", Quantity: 5})

	assert.Equal(t, 2, state.Lines[0].Quantity)
	assert.Equal(t, 5, next.Lines[0].Quantity)
}

func TestPricing_Totals(t *testing.T) {
	pricing := Pricing{TaxRate: 0.10, DeliveryFee: 3.50, FreeDeliveryThreshold: 30}

	c := New(pricing)
	c.AddItem(margherita, 1)
	c.AddItem(diavola, 2)

	totals := c.Totals()
	assert.InDelta(t, 50.50, totals.Subtotal, 1e-9)
	assert.InDelta(t, 5.05, totals.Tax, 1e-9)
	assert.Zero(t, totals.DeliveryFee)
	assert.InDelta(t, 55.55, totals.Total, 1e-9)
}

func TestPricing_Totals_DeliveryFeeBelowThreshold(t *testing.T) {
	pricing := Pricing{TaxRate: 0.22, DeliveryFee: 3.50, FreeDeliveryThreshold: 30}

	c := New(pricing)
	c.AddItem(tiramisu, 2) // 13.00

	totals := c.Totals()
	assert.InDelta(t, 3.50, totals.DeliveryFee, 1e-9)
	assert.InDelta(t, 13.00+13.00*0.22+3.50, totals.Total, 1e-9)
}

func TestPricing_Totals_EmptyCart(t *testing.T) {
	pricing := Pricing{TaxRate: 0.22, DeliveryFee: 3.50, FreeDeliveryThreshold: 30}

	totals := New(pricing).Totals()
	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.DeliveryFee)
	assert.Zero(t, totals.Total)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "€14.50", FormatPrice(14.5))
	assert.Equal(t, "€0.00", FormatPrice(0))
	assert.Equal(t, "€55.55", FormatPrice(55.554))
}
