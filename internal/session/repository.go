package session

import (
	"context"
	"fmt"

	"fitclub/internal/apperror"
	"fitclub/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	q sqlx.ExtContext
}

func NewRepository(q sqlx.ExtContext) Repository {
	return &repository{q: q}
}

func (r *repository) Create(ctx context.Context, trainerID, memberID, bookingID int) (*Session, error) {
	query := `
		INSERT INTO training_sessions (trainer_id, member_id, booking_id)
		VALUES ($1, $2, $3)
		RETURNING id, trainer_id, member_id, booking_id, created_at, updated_at
	`

	var s Session
	if err := sqlx.GetContext(ctx, r.q, &s, query, trainerID, memberID, bookingID); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("session references: %w", apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &s, nil
}

func (r *repository) LockByID(ctx context.Context, id int) (*Session, error) {
	query := `
		SELECT id, trainer_id, member_id, booking_id, created_at, updated_at
		FROM training_sessions
		WHERE id = $1
		FOR UPDATE
	`

	var s Session
	if err := sqlx.GetContext(ctx, r.q, &s, query, id); err != nil {
		return nil, db.NotFound(err, fmt.Sprintf("session %d", id))
	}

	return &s, nil
}

// Reassign points an existing session at a new booking and trainer in place.
func (r *repository) Reassign(ctx context.Context, id, bookingID, trainerID int) (*Session, error) {
	query := `
		UPDATE training_sessions
		SET booking_id = $2, trainer_id = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING id, trainer_id, member_id, booking_id, created_at, updated_at
	`

	var s Session
	if err := sqlx.GetContext(ctx, r.q, &s, query, id, bookingID, trainerID); err != nil {
		return nil, db.NotFound(err, fmt.Sprintf("session %d", id))
	}

	return &s, nil
}

func (r *repository) ListByMember(ctx context.Context, memberID int) ([]SessionWithDetails, error) {
	query := `
		SELECT s.id, s.trainer_id, s.member_id, s.booking_id, s.created_at, s.updated_at,
		       t.name AS trainer_name, rm.name AS room_name, b.start_time, b.end_time
		FROM training_sessions s
		JOIN trainers t ON t.id = s.trainer_id
		JOIN room_bookings b ON b.id = s.booking_id
		JOIN rooms rm ON rm.id = b.room_id
		WHERE s.member_id = $1
		ORDER BY b.start_time
	`

	sessions := []SessionWithDetails{}
	if err := sqlx.SelectContext(ctx, r.q, &sessions, query, memberID); err != nil {
		return nil, err
	}

	return sessions, nil
}
