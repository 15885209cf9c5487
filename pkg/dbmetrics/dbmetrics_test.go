package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PadelBooking/pkg/metrics"
)

func TestOperationName(t *testing.T) {
	assert.Equal(t, "select", operationName("SELECT id FROM bookings"))
	assert.Equal(t, "insert", operationName("  INSERT INTO users"))
	assert.Equal(t, "unknown", operationName(""))
}

func TestDB_DelegatesToUnderlyingConnection(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.NewWithRegisterer("dbmetrics-test", prometheus.NewRegistry())
	wrapped := Wrap(db, m)
	assert.Same(t, db, wrapped.Unwrap())

	mock.ExpectExec("DELETE FROM sessions").WillReturnResult(sqlmock.NewResult(0, 3))
	res, err := wrapped.ExecContext(context.Background(), "DELETE FROM sessions")
	require.NoError(t, err)
	affected, err := res.RowsAffected()
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)

	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow(1))
	var v int
	require.NoError(t, wrapped.QueryRowContext(context.Background(), "SELECT 1").Scan(&v))
	assert.Equal(t, 1, v)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWrapWithDefault_StopsCollector(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	stop := make(chan struct{})
	wrapped := WrapWithDefault(db, nil, stop)
	require.NotNil(t, wrapped)
	close(stop)
}
