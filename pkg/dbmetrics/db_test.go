package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GEV-BookingService/pkg/metrics"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM slots"))
	assert.Equal(t, "insert", operation("  INSERT INTO bookings"))
	assert.Equal(t, "unknown", operation(""))
}

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(db), GetExecutor(ctx, db))

	mock.ExpectBegin()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, db))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_ObservesErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	m := metrics.NewWithRegistry("gev-test", prometheus.NewRegistry())
	db := Wrap(sqlDB, m)

	mock.ExpectExec("DELETE FROM slots").WillReturnError(assert.AnError)
	_, err = db.ExecContext(context.Background(), "DELETE FROM slots WHERE id = $1", "x")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("gev-test", "delete")))
	require.NoError(t, mock.ExpectationsWereMet())
}
