package cart

import (
	"sync"

	"cafepos-be/internal/catalog"
	"cafepos-be/internal/money"
)

// Line is one product in the order being assembled. The product is a
// snapshot: later menu edits must not change a cart (or a submitted order).
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Notes    string          `json:"notes"`
}

// Cart is the transient, in-process order under construction. It is never
// persisted; losing it on restart is accepted. At most one line exists per
// product id. The mutex only guards against concurrent HTTP handlers — the
// POS itself is a single operator.
type Cart struct {
	mu    sync.Mutex
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// AddLine increments the quantity for the product, appending a new line the
// first time it is added.
func (c *Cart) AddLine(product catalog.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, Line{Product: product, Quantity: 1})
}

// RemoveOne decrements the quantity, dropping the line when it reaches zero.
// Unknown products are ignored.
func (c *Cart) RemoveOne(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if c.lines[i].Quantity <= 1 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity--
		}
		return
	}
}

// DeleteLine drops the whole line regardless of quantity.
func (c *Cart) DeleteLine(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetNote replaces the note wholesale. Unknown products are ignored.
func (c *Cart) SetNote(productID, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == productID {
			c.lines[i].Notes = text
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Lines returns a copy; callers can never reach into the cart's own state.
func (c *Cart) Lines() []Line {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

// Amount is the exact numeric total.
func (c *Cart) Amount() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var sum float64
	for _, l := range c.lines {
		sum += l.Product.Price * float64(l.Quantity)
	}
	return sum
}

// Total is the formatted total shown on the order panel.
func (c *Cart) Total() string {
	return money.Format(c.Amount())
}
