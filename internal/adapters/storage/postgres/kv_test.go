package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockKV(t *testing.T) (sqlmock.Sqlmock, *KV) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return mock, NewKV(db)
}

func TestKV_EnsureSchema(t *testing.T) {
	mock, kv := setupMockKV(t)

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS kv_state`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, kv.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKV_Save_Upserts(t *testing.T) {
	mock, kv := setupMockKV(t)

	mock.ExpectExec(`INSERT INTO kv_state`).
		WithArgs("pets", `[{"id":"p1"}]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kv.Save(context.Background(), " pets ", `[{"id":"p1"}]`))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKV_Save_WrapsDriverError(t *testing.T) {
	mock, kv := setupMockKV(t)
	boom := errors.New("connection refused")

	mock.ExpectExec(`INSERT INTO kv_state`).
		WithArgs("pets", "[]").
		WillReturnError(boom)

	err := kv.Save(context.Background(), "pets", "[]")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestKV_Load_Found(t *testing.T) {
	mock, kv := setupMockKV(t)

	rows := sqlmock.NewRows([]string{"payload"}).AddRow(`{"pet_id":"p1"}`)
	mock.ExpectQuery(`SELECT payload`).
		WithArgs("current_pet").
		WillReturnRows(rows)

	v, found, err := kv.Load(context.Background(), "current_pet")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `{"pet_id":"p1"}`, v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKV_Load_Missing(t *testing.T) {
	mock, kv := setupMockKV(t)

	mock.ExpectQuery(`SELECT payload`).
		WithArgs("vaccines").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}))

	_, found, err := kv.Load(context.Background(), "vaccines")
	require.NoError(t, err)
	assert.False(t, found)
}
