package order

import (
	"time"

	"cafepos-be/internal/cart"
	"cafepos-be/internal/money"
)

// Order is immutable once written; the only state transition is MarkReady
// setting FinishedAt and relocating it to history.
//
// OrderNumber is the human-facing sequence shown to staff. It restarts every
// local calendar day and may collide across days; ID is the real identifier.
type Order struct {
	ID          string      `json:"id"`
	OrderNumber int         `json:"orderNumber"`
	Items       []cart.Line `json:"items"`
	Amount      float64     `json:"amount,omitempty"`
	Total       string      `json:"total"`
	CreatedAt   time.Time   `json:"createdAt"`
	FinishedAt  *time.Time  `json:"finishedAt,omitempty"`
}

// Value is the exact amount when present, otherwise a best-effort parse of
// the display total. Records from the old schema only carry the string.
func (o *Order) Value() float64 {
	if o.Amount > 0 {
		return o.Amount
	}
	return money.Parse(o.Total)
}
