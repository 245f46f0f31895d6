package trainer

import (
	"context"
	"fmt"

	"fitclub/internal/apperror"
	"fitclub/internal/db"
	"fitclub/internal/interval"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	q sqlx.ExtContext
}

func NewRepository(q sqlx.ExtContext) Repository {
	return &repository{q: q}
}

func (r *repository) CreateTrainer(ctx context.Context, name string) (*Trainer, error) {
	query := `
		INSERT INTO trainers (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`

	var t Trainer
	if err := sqlx.GetContext(ctx, r.q, &t, query, name); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, fmt.Errorf("trainer %q: %w", name, apperror.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create trainer: %w", err)
	}

	return &t, nil
}

func (r *repository) GetTrainerByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT id, name, created_at
		FROM trainers
		WHERE id = $1
	`

	var t Trainer
	if err := sqlx.GetContext(ctx, r.q, &t, query, id); err != nil {
		return nil, db.NotFound(err, fmt.Sprintf("trainer %d", id))
	}

	return &t, nil
}

// LockTrainer holds the trainer row until the transaction ends so that
// availability, sessions and classes for the trainer are decided one at a time.
func (r *repository) LockTrainer(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT id, name, created_at
		FROM trainers
		WHERE id = $1
		FOR UPDATE
	`

	var t Trainer
	if err := sqlx.GetContext(ctx, r.q, &t, query, id); err != nil {
		return nil, db.NotFound(err, fmt.Sprintf("trainer %d", id))
	}

	return &t, nil
}

func (r *repository) ListTrainers(ctx context.Context) ([]Trainer, error) {
	query := `
		SELECT id, name, created_at
		FROM trainers
		ORDER BY name
	`

	trainers := []Trainer{}
	if err := sqlx.SelectContext(ctx, r.q, &trainers, query); err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *repository) CreateAvailability(ctx context.Context, trainerID int, w interval.Window, recurring bool) (*Availability, error) {
	query := `
		INSERT INTO availability (trainer_id, is_recurring, start_time, end_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id, trainer_id, is_recurring, start_time, end_time, created_at
	`

	var a Availability
	if err := sqlx.GetContext(ctx, r.q, &a, query, trainerID, recurring, w.Start, w.End); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("trainer %d: %w", trainerID, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create availability: %w", err)
	}

	return &a, nil
}

func (r *repository) ListAvailability(ctx context.Context, trainerID int) ([]Availability, error) {
	query := `
		SELECT id, trainer_id, is_recurring, start_time, end_time, created_at
		FROM availability
		WHERE trainer_id = $1
		ORDER BY start_time
	`

	windows := []Availability{}
	if err := sqlx.SelectContext(ctx, r.q, &windows, query, trainerID); err != nil {
		return nil, err
	}

	return windows, nil
}

func (r *repository) ListSessionSlots(ctx context.Context, trainerID int) ([]Slot, error) {
	query := `
		SELECT 'session' AS kind, s.id AS ref_id, s.booking_id, r.name AS room_name,
		       m.name AS label, b.start_time, b.end_time
		FROM training_sessions s
		JOIN room_bookings b ON b.id = s.booking_id
		JOIN rooms r ON r.id = b.room_id
		JOIN members m ON m.id = s.member_id
		WHERE s.trainer_id = $1
		ORDER BY b.start_time
	`

	slots := []Slot{}
	if err := sqlx.SelectContext(ctx, r.q, &slots, query, trainerID); err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) ListClassSlots(ctx context.Context, trainerID int) ([]Slot, error) {
	query := `
		SELECT 'class' AS kind, fc.id AS ref_id, fc.booking_id, r.name AS room_name,
		       fc.name AS label, b.start_time, b.end_time
		FROM fitness_classes fc
		JOIN room_bookings b ON b.id = fc.booking_id
		JOIN rooms r ON r.id = b.room_id
		WHERE fc.trainer_id = $1
		ORDER BY b.start_time
	`

	slots := []Slot{}
	if err := sqlx.SelectContext(ctx, r.q, &slots, query, trainerID); err != nil {
		return nil, err
	}

	return slots, nil
}
