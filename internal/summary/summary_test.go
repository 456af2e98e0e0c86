package summary

import (
	"testing"
	"time"

	"cafepos-be/internal/cart"
	"cafepos-be/internal/catalog"
	"cafepos-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 8, 28, 15, 0, 0, 0, time.Local)

func ord(id, total string, age time.Duration, items ...cart.Line) order.Order {
	return order.Order{
		ID:        id,
		Items:     items,
		Total:     total,
		CreatedAt: now.Add(-age),
	}
}

func line(productID, name string, price float64, qty int) cart.Line {
	return cart.Line{
		Product:  catalog.Product{ID: productID, Name: name, Price: price},
		Quantity: qty,
	}
}

func TestParseWindow(t *testing.T) {
	for in, want := range map[string]Window{
		"":      WindowToday,
		"today": WindowToday,
		"0":     WindowToday,
		"7":     WindowWeek,
		"30":    WindowMonth,
		"all":   WindowAll,
	} {
		w, err := ParseWindow(in)
		require.NoError(t, err)
		assert.Equal(t, want, w)
	}

	_, err := ParseWindow("yesterday")
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestSummarize_Windows(t *testing.T) {
	history := []order.Order{
		ord("today-1", "$90.00", 2*time.Hour),
		ord("today-2", "$40.00", 5*time.Hour),
		ord("this-week", "$150.00", 3*24*time.Hour),
		ord("old", "$500.00", 40*24*time.Hour),
	}

	t.Run("Today matches the calendar day only", func(t *testing.T) {
		res := summarizeAt(history, WindowToday, now)
		assert.Equal(t, 2, res.OrderCount)
		assert.InDelta(t, 130.0, res.TotalRevenue, 0.001)
	})

	t.Run("Seven days is a continuous range", func(t *testing.T) {
		res := summarizeAt(history, WindowWeek, now)
		assert.Equal(t, 3, res.OrderCount)
		assert.InDelta(t, 280.0, res.TotalRevenue, 0.001)
		require.NotNil(t, res.HighestValueOrder)
		assert.Equal(t, "$150.00", res.HighestValueOrder.Total)
	})

	t.Run("All time is unfiltered", func(t *testing.T) {
		res := summarizeAt(history, WindowAll, now)
		assert.Equal(t, 4, res.OrderCount)
		assert.InDelta(t, 780.0, res.TotalRevenue, 0.001)
		assert.Equal(t, "$500.00", res.HighestValueOrder.Total)
	})
}

func TestSummarize_BestSeller(t *testing.T) {
	history := []order.Order{
		ord("o1", "$105.00", time.Hour,
			line("1", "Espresso", 25, 2),
			line("3", "Latte", 40, 1),
		),
		ord("o2", "$130.00", 2*time.Hour,
			line("3", "Latte", 40, 1),
			line("1", "Espresso", 25, 1),
			line("5", "Moka", 45, 1),
		),
	}

	res := summarizeAt(history, WindowAll, now)
	require.NotNil(t, res.BestSeller)
	assert.Equal(t, "1", res.BestSeller.ProductID)
	assert.Equal(t, "Espresso", res.BestSeller.Name)
	assert.Equal(t, 3, res.BestSeller.Quantity)
}

func TestSummarize_TiesAreFirstEncountered(t *testing.T) {
	history := []order.Order{
		ord("first", "$80.00", time.Hour, line("9", "Zeta tea", 40, 2)),
		ord("second", "$80.00", 2*time.Hour, line("2", "Americano", 40, 2)),
	}

	res := summarizeAt(history, WindowAll, now)

	// equal quantities and equal totals: the first encountered wins both
	require.NotNil(t, res.BestSeller)
	assert.Equal(t, "9", res.BestSeller.ProductID)
	assert.Equal(t, "first", res.HighestValueOrder.ID)
}

func TestSummarize_EmptyWindow(t *testing.T) {
	history := []order.Order{ord("old", "$500.00", 40*24*time.Hour)}

	res := summarizeAt(history, WindowToday, now)

	assert.Equal(t, 0, res.OrderCount)
	assert.Zero(t, res.TotalRevenue)
	assert.Nil(t, res.BestSeller)
	assert.Nil(t, res.HighestValueOrder)
}

func TestSummarize_CorruptTotals(t *testing.T) {
	history := []order.Order{
		ord("ok", "$90.00", time.Hour, line("1", "Espresso", 25, 1)),
		ord("corrupt", "???", time.Hour, line("3", "Latte", 40, 1)),
	}

	res := summarizeAt(history, WindowAll, now)

	// the corrupt record counts as zero but does not block the rest
	assert.Equal(t, 2, res.OrderCount)
	assert.InDelta(t, 90.0, res.TotalRevenue, 0.001)
	assert.Equal(t, "ok", res.HighestValueOrder.ID)
}
