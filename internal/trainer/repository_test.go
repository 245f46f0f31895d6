package trainer

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"fitclub/internal/apperror"
	"fitclub/internal/interval"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var slotColumns = []string{"kind", "ref_id", "booking_id", "room_name", "label", "start_time", "end_time"}

func setupTrainerMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestCreateTrainer(t *testing.T) {
	repo, mock, close := setupTrainerMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trainers (name) VALUES ($1) RETURNING id, name, created_at")).
		WithArgs("Jordan").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(2, "Jordan", time.Now()))

	tr, err := repo.CreateTrainer(ctx, "Jordan")
	require.NoError(t, err)
	assert.Equal(t, 2, tr.ID)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO trainers (name)")).
		WithArgs("Jordan").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "trainers_name_key"})

	_, err = repo.CreateTrainer(ctx, "Jordan")
	assert.True(t, errors.Is(err, apperror.ErrDuplicate))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLockTrainer(t *testing.T) {
	repo, mock, close := setupTrainerMock(t)
	defer close()

	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, created_at FROM trainers WHERE id = $1 FOR UPDATE")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(2, "Jordan", time.Now()))

	tr, err := repo.LockTrainer(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Jordan", tr.Name)

	mock.ExpectQuery(regexp.QuoteMeta("FROM trainers WHERE id = $1 FOR UPDATE")).
		WithArgs(99).
		WillReturnError(sql.ErrNoRows)

	_, err = repo.LockTrainer(ctx, 99)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Contains(t, err.Error(), "trainer 99")
}

func TestCreateAndListAvailability(t *testing.T) {
	repo, mock, close := setupTrainerMock(t)
	defer close()

	ctx := context.Background()
	w, err := interval.ParseWindow("2025-01-02", "09:00", "2025-01-02", "12:00")
	require.NoError(t, err)
	cols := []string{"id", "trainer_id", "is_recurring", "start_time", "end_time", "created_at"}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO availability (trainer_id, is_recurring, start_time, end_time) VALUES ($1, $2, $3, $4)")).
		WithArgs(2, true, w.Start, w.End).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, 2, true, w.Start, w.End, time.Now()))

	a, err := repo.CreateAvailability(ctx, 2, w, true)
	require.NoError(t, err)
	assert.True(t, a.IsRecurring)
	assert.Equal(t, w, a.Window())

	mock.ExpectQuery(regexp.QuoteMeta("FROM availability WHERE trainer_id = $1 ORDER BY start_time")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(1, 2, true, w.Start, w.End, time.Now()))

	list, err := repo.ListAvailability(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, list, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListSlots(t *testing.T) {
	repo, mock, close := setupTrainerMock(t)
	defer close()

	ctx := context.Background()
	start := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM training_sessions s JOIN room_bookings b ON b.id = s.booking_id")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(slotColumns).AddRow("session", 4, 10, "Studio A", "Sam", start, start.Add(time.Hour)))

	sessions, err := repo.ListSessionSlots(ctx, 2)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, SlotSession, sessions[0].Kind)

	mock.ExpectQuery(regexp.QuoteMeta("FROM fitness_classes fc JOIN room_bookings b ON b.id = fc.booking_id")).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows(slotColumns))

	classes, err := repo.ListClassSlots(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, classes)
	require.NoError(t, mock.ExpectationsWereMet())
}
