package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"cafepos-be/internal/logger"
	"cafepos-be/internal/order"

	"go.uber.org/zap"
)

// Export is a timestamped offline backup of the full history.
type Export struct {
	FileName string `json:"fileName"`
	Path     string `json:"path"`
	Payload  []byte `json:"-"`
}

// Service manages the fulfilled-order log. Deleting and clearing are
// permanent; the transport layer demands an explicit confirmation flag
// before calling them.
type Service interface {
	List(ctx context.Context) ([]order.Order, error)
	DeleteOne(ctx context.Context, orderID string) error
	ClearAll(ctx context.Context) error
	ExportSnapshot(ctx context.Context) (*Export, error)
}

type service struct {
	repo      order.Repository
	exportDir string
	now       func() time.Time
}

func NewService(repo order.Repository, exportDir string) Service {
	return &service{repo: repo, exportDir: exportDir, now: time.Now}
}

func (s *service) List(ctx context.Context) ([]order.Order, error) {
	return s.repo.HistoryOrders(ctx)
}

// DeleteOne permanently removes one order. A missing id is a benign no-op.
func (s *service) DeleteOne(ctx context.Context, orderID string) error {
	orders, err := s.repo.HistoryOrders(ctx)
	if err != nil {
		return err
	}

	kept := orders[:0]
	for _, o := range orders {
		if o.ID != orderID {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(orders) {
		return nil
	}

	return s.repo.SaveHistory(ctx, kept)
}

func (s *service) ClearAll(ctx context.Context) error {
	return s.repo.ClearHistory(ctx)
}

// ExportSnapshot writes the whole history as pretty-printed JSON into the
// export directory, named with a millisecond timestamp to avoid collisions.
func (s *service) ExportSnapshot(ctx context.Context) (*Export, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ExportSnapshot"),
	)

	orders, err := s.repo.HistoryOrders(ctx)
	if err != nil {
		log.Error("failed to load history", zap.Error(err))
		return nil, err
	}
	if len(orders) == 0 {
		return nil, ErrNothingToExport
	}

	payload, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode history: %w", err)
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export dir: %w", err)
	}

	fileName := fmt.Sprintf("historial_pedidos_%d.json", s.now().UnixMilli())
	path := filepath.Join(s.exportDir, fileName)

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		log.Error("failed to write export", zap.Error(err))
		return nil, fmt.Errorf("failed to write export: %w", err)
	}

	log.Info("history exported",
		zap.String("file", fileName),
		zap.Int("orders", len(orders)),
	)

	return &Export{FileName: fileName, Path: path, Payload: payload}, nil
}
