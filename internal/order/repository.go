package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cafepos-be/internal/storage"
)

// Repository persists the two order lists. Pending keeps insertion order
// (oldest first); history keeps most-recent-first.
type Repository interface {
	PendingOrders(ctx context.Context) ([]Order, error)
	SavePending(ctx context.Context, orders []Order) error
	HistoryOrders(ctx context.Context) ([]Order, error)
	SaveHistory(ctx context.Context, orders []Order) error
	ClearHistory(ctx context.Context) error
}

type repository struct {
	store storage.Store
}

func NewRepository(store storage.Store) Repository {
	return &repository{store: store}
}

func (r *repository) PendingOrders(ctx context.Context) ([]Order, error) {
	return r.loadOrders(ctx, storage.KeyPending)
}

func (r *repository) SavePending(ctx context.Context, orders []Order) error {
	return r.saveOrders(ctx, storage.KeyPending, orders)
}

func (r *repository) HistoryOrders(ctx context.Context) ([]Order, error) {
	return r.loadOrders(ctx, storage.KeyHistory)
}

func (r *repository) SaveHistory(ctx context.Context, orders []Order) error {
	return r.saveOrders(ctx, storage.KeyHistory, orders)
}

func (r *repository) ClearHistory(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyHistory)
}

func (r *repository) loadOrders(ctx context.Context, key string) ([]Order, error) {
	data, err := r.store.Get(ctx, key)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []Order{}, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return orders, nil
}

func (r *repository) saveOrders(ctx context.Context, key string, orders []Order) error {
	if orders == nil {
		orders = []Order{}
	}

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	return r.store.Set(ctx, key, data)
}
