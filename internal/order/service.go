package order

import (
	"context"
	"sync"
	"time"

	"cafepos-be/internal/cart"
	"cafepos-be/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service owns the order lifecycle: cart -> pending -> history.
type Service interface {
	Submit(ctx context.Context, c *cart.Cart) (*Order, error)
	ListPending(ctx context.Context) ([]Order, error)
	MarkReady(ctx context.Context, orderID string) (*Order, error)
}

type service struct {
	repo Repository

	// mu serializes submissions and fulfillments so two in-process calls can
	// never read the same pending list and derive the same day sequence.
	mu  sync.Mutex
	now func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Submit turns a non-empty cart into a numbered pending order. The cart is
// cleared only after the write succeeds, so a storage failure leaves
// everything for the caller to retry.
func (s *service) Submit(ctx context.Context, c *cart.Cart) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Submit"),
	)

	if c.Len() == 0 {
		log.Warn("submit with empty cart")
		return nil, ErrEmptyCart
	}

	pending, err := s.repo.PendingOrders(ctx)
	if err != nil {
		log.Error("failed to load pending orders", zap.Error(err))
		return nil, err
	}

	now := s.now()
	number := 1
	for i := range pending {
		if sameLocalDay(pending[i].CreatedAt, now) {
			number++
		}
	}

	ord := Order{
		ID:          uuid.New().String(),
		OrderNumber: number,
		Items:       c.Lines(),
		Amount:      c.Amount(),
		Total:       c.Total(),
		CreatedAt:   now,
	}

	if err := s.repo.SavePending(ctx, append(pending, ord)); err != nil {
		log.Error("failed to save pending orders", zap.Error(err))
		return nil, err
	}

	c.Clear()

	log.Info("order submitted",
		zap.String("order_id", ord.ID),
		zap.Int("order_number", ord.OrderNumber),
		zap.String("total", ord.Total),
	)

	return &ord, nil
}

func (s *service) ListPending(ctx context.Context) ([]Order, error) {
	return s.repo.PendingOrders(ctx)
}

// MarkReady moves one order from pending to the front of history, stamping
// FinishedAt. History is written before pending is rewritten: if the process
// dies between the two, the order shows up in both lists instead of neither.
// A missing id means it was already moved; callers treat that as benign.
func (s *service) MarkReady(ctx context.Context, orderID string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "MarkReady"),
		zap.String("order_id", orderID),
	)

	pending, err := s.repo.PendingOrders(ctx)
	if err != nil {
		log.Error("failed to load pending orders", zap.Error(err))
		return nil, err
	}

	idx := -1
	for i := range pending {
		if pending[i].ID == orderID {
			idx = i
			break
		}
	}
	if idx < 0 {
		log.Warn("order not in pending list")
		return nil, ErrOrderNotFound
	}

	ord := pending[idx]
	finished := s.now()
	ord.FinishedAt = &finished

	history, err := s.repo.HistoryOrders(ctx)
	if err != nil {
		log.Error("failed to load history", zap.Error(err))
		return nil, err
	}

	if err := s.repo.SaveHistory(ctx, append([]Order{ord}, history...)); err != nil {
		log.Error("failed to save history", zap.Error(err))
		return nil, err
	}

	remaining := append(pending[:idx:idx], pending[idx+1:]...)
	if err := s.repo.SavePending(ctx, remaining); err != nil {
		log.Error("failed to save pending orders", zap.Error(err))
		return nil, err
	}

	log.Info("order marked ready", zap.Int("order_number", ord.OrderNumber))
	return &ord, nil
}

func sameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}
