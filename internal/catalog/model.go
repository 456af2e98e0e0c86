package catalog

// Product is a purchasable menu entry. Orders embed snapshots of it, so
// editing or deleting a product never rewrites history.
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SaveProductInput creates a product when ID is empty, edits otherwise.
type SaveProductInput struct {
	ID    string
	Name  string
	Price float64
}
