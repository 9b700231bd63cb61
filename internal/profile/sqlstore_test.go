package profile

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create a mock DB and SQLStore for testing.
func newMockDBAndStore(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *SQLStore) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	store := NewSQLStore(db)
	require.NotNil(t, store, "Store should not be nil")
	return db, mock, store
}

func TestSQLStore_Init(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	query := regexp.QuoteMeta(`CREATE TABLE IF NOT EXISTS profile_values (key TEXT PRIMARY KEY, value TEXT NOT NULL);`)
	mock.ExpectExec(query).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, store.Init(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Get(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	query := regexp.QuoteMeta(`SELECT value FROM profile_values WHERE key = ?;`)
	rows := sqlmock.NewRows([]string{"value"}).AddRow("Ana")
	mock.ExpectQuery(query).WithArgs(KeyCustomerName).WillReturnRows(rows)

	value, err := store.Get(context.Background(), KeyCustomerName)
	require.NoError(t, err)
	assert.Equal(t, "Ana", value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Get_NotFound(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	query := regexp.QuoteMeta(`SELECT value FROM profile_values WHERE key = ?;`)
	mock.ExpectQuery(query).WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound, "absence maps to the package sentinel")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Get_QueryError(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	dbErr := errors.New("database is locked")
	query := regexp.QuoteMeta(`SELECT value FROM profile_values WHERE key = ?;`)
	mock.ExpectQuery(query).WithArgs(KeyCustomerName).WillReturnError(dbErr)

	_, err := store.Get(context.Background(), KeyCustomerName)
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr, "underlying error stays wrapped")
	assert.NotErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Set(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	query := regexp.QuoteMeta(`INSERT INTO profile_values (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value;`)
	mock.ExpectExec(query).WithArgs(KeyCustomerName, "Ana").WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, store.Set(context.Background(), KeyCustomerName, "Ana"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStore_Delete_AbsentKeyIsNotAnError(t *testing.T) {
	db, mock, store := newMockDBAndStore(t)
	defer db.Close()

	query := regexp.QuoteMeta(`DELETE FROM profile_values WHERE key = ?;`)
	mock.ExpectExec(query).WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, store.Delete(context.Background(), "missing"))
	require.NoError(t, mock.ExpectationsWereMet())
}
