package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[{"id":"1"}]`))
		mock.ExpectQuery(`SELECT value FROM blobs WHERE key = \$1`).
			WithArgs(KeyMenu).
			WillReturnRows(rows)

		value, err := store.Get(ctx, KeyMenu)
		assert.NoError(t, err)
		assert.JSONEq(t, `[{"id":"1"}]`, string(value))
	})

	t.Run("Missing key", func(t *testing.T) {
		mock.ExpectQuery(`SELECT value FROM blobs WHERE key = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows([]string{"value"}))

		_, err := store.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Set(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	mock.ExpectExec(`INSERT INTO blobs`).
		WithArgs(KeyPending, []byte(`[]`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.Set(context.Background(), KeyPending, []byte(`[]`))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db)

	mock.ExpectExec(`DELETE FROM blobs WHERE key = \$1`).
		WithArgs(KeyHistory).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = store.Delete(context.Background(), KeyHistory)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
