package cart

import (
	"math"
	"sync"
)

// Product is the catalog descriptor handed in by the menu layer. The cart
// assumes it is already validated; a product with a negative or NaN price is
// rejected at dispatch and leaves the state untouched.
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image,omitempty"`
}

type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Category  string  `json:"category"`
	Image     string  `json:"image,omitempty"`
}

// State is the full cart state. Lines keep insertion order, which drives
// display order only.
type State struct {
	Lines []Line
}

// Snapshot is the read model derived from a State. Subtotal and ItemCount are
// always recomputed from the lines, never stored independently.
type Snapshot struct {
	Lines     []Line  `json:"lines"`
	Subtotal  float64 `json:"subtotal"`
	ItemCount int     `json:"item_count"`
}

type Action interface {
	isAction()
}

type AddItem struct {
	Product  Product
	Quantity int
}

type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

type RemoveItem struct {
	ProductID string
}

type Clear struct{}

func (AddItem) isAction()        {}
func (UpdateQuantity) isAction() {}
func (RemoveItem) isAction()     {}
func (Clear) isAction()          {}

// Reduce applies an action to a state and returns the new state. It never
// mutates its input; the returned state owns a fresh line slice.
func Reduce(state State, action Action) State {
	switch a := action.(type) {
	case AddItem:
		if a.Product.ID == "" || a.Product.Price < 0 || math.IsNaN(a.Product.Price) || math.IsInf(a.Product.Price, 0) {
			return state
		}
		qty := a.Quantity
		if qty < 1 {
			qty = 1
		}
		lines := copyLines(state.Lines)
		for i := range lines {
			if lines[i].ProductID == a.Product.ID {
				lines[i].Quantity += qty
				return State{Lines: lines}
			}
		}
		lines = append(lines, Line{
			ProductID: a.Product.ID,
			Name:      a.Product.Name,
			UnitPrice: a.Product.Price,
			Quantity:  qty,
			Category:  a.Product.Category,
			Image:     a.Product.Image,
		})
		return State{Lines: lines}

	case UpdateQuantity:
		if a.Quantity <= 0 {
			return Reduce(state, RemoveItem{ProductID: a.ProductID})
		}
		lines := copyLines(state.Lines)
		for i := range lines {
			if lines[i].ProductID == a.ProductID {
				lines[i].Quantity = a.Quantity
				return State{Lines: lines}
			}
		}
		return state

	case RemoveItem:
		for i, line := range state.Lines {
			if line.ProductID == a.ProductID {
				lines := make([]Line, 0, len(state.Lines)-1)
				lines = append(lines, state.Lines[:i]...)
				lines = append(lines, state.Lines[i+1:]...)
				return State{Lines: lines}
			}
		}
		return state

	case Clear:
		return State{}

	default:
		return state
	}
}

// Snapshot recomputes the derived totals from the current lines.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{Lines: copyLines(s.Lines)}
	if snap.Lines == nil {
		snap.Lines = []Line{}
	}
	for _, line := range s.Lines {
		snap.Subtotal += line.UnitPrice * float64(line.Quantity)
		snap.ItemCount += line.Quantity
	}
	return snap
}

func copyLines(lines []Line) []Line {
	if len(lines) == 0 {
		return nil
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}

// Cart wraps a State with pricing and synchronous observer notification.
// Every mutation notifies subscribers before the call returns, so the UI
// never observes a stale snapshot.
type Cart struct {
	mu        sync.Mutex
	state     State
	pricing   Pricing
	observers []func(Snapshot)
}

func New(pricing Pricing) *Cart {
	return &Cart{pricing: pricing}
}

// Subscribe registers an observer invoked after every mutation.
func (c *Cart) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

func (c *Cart) AddItem(product Product, quantity int) Snapshot {
	return c.dispatch(AddItem{Product: product, Quantity: quantity})
}

func (c *Cart) UpdateQuantity(productID string, quantity int) Snapshot {
	return c.dispatch(UpdateQuantity{ProductID: productID, Quantity: quantity})
}

func (c *Cart) RemoveItem(productID string) Snapshot {
	return c.dispatch(RemoveItem{ProductID: productID})
}

func (c *Cart) Clear() Snapshot {
	return c.dispatch(Clear{})
}

func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Snapshot()
}

// Totals prices the current snapshot with the cart's pricing config.
func (c *Cart) Totals() Totals {
	return c.pricing.Totals(c.Snapshot())
}

func (c *Cart) dispatch(action Action) Snapshot {
	c.mu.Lock()
	c.state = Reduce(c.state, action)
	snap := c.state.Snapshot()
	observers := c.observers
	c.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
	return snap
}
