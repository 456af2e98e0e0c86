package summary

import (
	"errors"
	"time"

	"cafepos-be/internal/order"
)

// Window selects which slice of history feeds the aggregation. Today is
// calendar-aligned; the day counts are continuous ranges ending now.
type Window int

const (
	WindowAll   Window = -1
	WindowToday Window = 0
	WindowWeek  Window = 7
	WindowMonth Window = 30
)

var ErrInvalidWindow = errors.New("invalid summary window")

// ParseWindow maps the filter labels the client sends to a Window.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "", "today", "0":
		return WindowToday, nil
	case "7":
		return WindowWeek, nil
	case "30":
		return WindowMonth, nil
	case "all":
		return WindowAll, nil
	}
	return WindowToday, ErrInvalidWindow
}

type BestSeller struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

// Result of one aggregation pass. BestSeller and HighestValueOrder are nil
// when no orders fall inside the window; clients render an explicit empty
// state instead of zero-value cards.
type Result struct {
	Window            Window       `json:"window"`
	OrderCount        int          `json:"orderCount"`
	TotalRevenue      float64      `json:"totalRevenue"`
	BestSeller        *BestSeller  `json:"bestSeller,omitempty"`
	HighestValueOrder *order.Order `json:"highestValueOrder,omitempty"`
}

// Summarize is pure: it is handed a history snapshot and returns a value.
// A single corrupt record degrades to a zero amount without failing the rest.
func Summarize(orders []order.Order, w Window) Result {
	return summarizeAt(orders, w, time.Now())
}

func summarizeAt(orders []order.Order, w Window, now time.Time) Result {
	filtered := filterWindow(orders, w, now)

	res := Result{Window: w, OrderCount: len(filtered)}
	if len(filtered) == 0 {
		return res
	}

	// Quantity per product id, remembering first-encounter order so ties
	// resolve stably rather than alphabetically.
	quantities := make(map[string]int)
	names := make(map[string]string)
	var seen []string

	topIdx := 0
	for i := range filtered {
		o := &filtered[i]
		res.TotalRevenue += o.Value()

		if o.Value() > filtered[topIdx].Value() {
			topIdx = i
		}

		for _, item := range o.Items {
			id := item.Product.ID
			if _, ok := quantities[id]; !ok {
				seen = append(seen, id)
				names[id] = item.Product.Name
			}
			quantities[id] += item.Quantity
		}
	}

	res.HighestValueOrder = &filtered[topIdx]

	for _, id := range seen {
		if res.BestSeller == nil || quantities[id] > res.BestSeller.Quantity {
			res.BestSeller = &BestSeller{
				ProductID: id,
				Name:      names[id],
				Quantity:  quantities[id],
			}
		}
	}

	return res
}

func filterWindow(orders []order.Order, w Window, now time.Time) []order.Order {
	if w == WindowAll {
		return orders
	}

	var out []order.Order
	if w == WindowToday {
		y, m, d := now.Local().Date()
		for _, o := range orders {
			oy, om, od := o.CreatedAt.Local().Date()
			if oy == y && om == m && od == d {
				out = append(out, o)
			}
		}
		return out
	}

	cutoff := now.Add(-time.Duration(w) * 24 * time.Hour)
	for _, o := range orders {
		if !o.CreatedAt.Before(cutoff) {
			out = append(out, o)
		}
	}
	return out
}
