package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"fitclub/internal/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDBMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	closer := func() { sqlxDB.Close() }
	return sqlxDB, mock, closer
}

func TestWithinTx_Commit(t *testing.T) {
	database, mock, close := setupDBMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE rooms SET name = $1 WHERE id = $2")).
		WithArgs("Studio A", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewTxManager(database).WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		_, err := tx.ExecContext(context.Background(), "UPDATE rooms SET name = $1 WHERE id = $2", "Studio A", 1)
		return err
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	database, mock, close := setupDBMock(t)
	defer close()

	errBusy := errors.New("trainer busy")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := NewTxManager(database).WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		return errBusy
	})

	require.ErrorIs(t, err, errBusy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	database, mock, close := setupDBMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = NewTxManager(database).WithinTx(context.Background(), func(tx *sqlx.Tx) error {
			panic("boom")
		})
	})
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTx_BeginFails(t *testing.T) {
	database, mock, close := setupDBMock(t)
	defer close()

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := NewTxManager(database).WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to begin transaction")
	assert.False(t, called)
}

func TestWithinTx_CommitFails(t *testing.T) {
	database, mock, close := setupDBMock(t)
	defer close()

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("could not serialize access"))

	err := NewTxManager(database).WithinTx(context.Background(), func(tx *sqlx.Tx) error {
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to commit transaction")
}

func TestExists(t *testing.T) {
	database, mock, close := setupDBMock(t)
	defer close()

	ctx := context.Background()
	query := "SELECT EXISTS(SELECT 1 FROM rooms WHERE name = $1)"

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Studio A").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := Exists(ctx, database, query, "Studio A")
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Nowhere").
		WillReturnError(sql.ErrNoRows)

	ok, err = Exists(ctx, database, query, "Nowhere")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPQClassification(t *testing.T) {
	fk := &pq.Error{Code: "23503", Constraint: "room_bookings_admin_id_fkey"}
	uniq := &pq.Error{Code: "23505", Constraint: "group_members_pkey"}
	check := &pq.Error{Code: "23514", Constraint: "fitness_classes_capacity_check"}

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(uniq))

	assert.True(t, IsUniqueViolation(uniq, ""))
	assert.True(t, IsUniqueViolation(uniq, "group_members_pkey"))
	assert.False(t, IsUniqueViolation(uniq, "rooms_name_key"))

	assert.True(t, IsCheckViolation(check))
	assert.False(t, IsCheckViolation(errors.New("plain")))
}

func TestNotFound(t *testing.T) {
	err := NotFound(fmt.Errorf("select room: %w", sql.ErrNoRows), "room")
	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Contains(t, err.Error(), "room")

	other := errors.New("connection reset")
	assert.Equal(t, other, NotFound(other, "room"))
	assert.NoError(t, NotFound(nil, "room"))
}
