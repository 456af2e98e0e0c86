package storage

import (
	"context"
	"errors"
)

// Blob keys used by the POS stores. History is kept most-recent-first.
const (
	KeyMenu    = "menu"
	KeyPending = "pedidos"
	KeyHistory = "pedidosHistorial"
)

var ErrKeyNotFound = errors.New("storage key not found")

// Store persists named opaque blobs with read-after-write consistency for a
// single caller. Every engine store (menu, pending, history) sits on top of
// one of these.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
