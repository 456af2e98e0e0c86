package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cafepos-be/internal/storage"
)

type Repository interface {
	Products(ctx context.Context) ([]Product, error)
	SaveProducts(ctx context.Context, products []Product) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) Products(ctx context.Context) ([]Product, error) {
	data, err := r.store.Get(ctx, storage.KeyMenu)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []Product{}, nil
	}
	if err != nil {
		return nil, err
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}
	return products, nil
}

func (r *repository) SaveProducts(ctx context.Context, products []Product) error {
	if products == nil {
		products = []Product{}
	}

	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode menu: %w", err)
	}
	return r.store.Set(ctx, storage.KeyMenu, data)
}
