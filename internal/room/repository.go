package room

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

// CreateRoom is idempotent: an existing room with the same name is returned.
func (r *repository) CreateRoom(ctx context.Context, name string) (*Room, error) {
	query := `
		INSERT INTO rooms (name)
		VALUES ($1)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, created_at
	`

	var room Room
	if err := sqlx.GetContext(ctx, r.q, &room, query, name); err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}

	return &room, nil
}

func (r *repository) GetRoomByName(ctx context.Context, name string) (*Room, error) {
	query := `
		SELECT id, name, created_at
		FROM rooms
		WHERE name = $1
	`

	var room Room
	if err := sqlx.GetContext(ctx, r.q, &room, query, name); err != nil {
		return nil, db.NotFound(err, "room "+name)
	}

	return &room, nil
}

// LockRoomByName serialises every booking decision on the room until the
// surrounding transaction ends.
func (r *repository) LockRoomByName(ctx context.Context, name string) (*Room, error) {
	query := `
		SELECT id, name, created_at
		FROM rooms
		WHERE name = $1
		FOR UPDATE
	`

	var room Room
	if err := sqlx.GetContext(ctx, r.q, &room, query, name); err != nil {
		return nil, db.NotFound(err, "room "+name)
	}

	return &room, nil
}

func (r *repository) ListRooms(ctx context.Context) ([]Room, error) {
	query := `
		SELECT id, name, created_at
		FROM rooms
		ORDER BY name
	`

	rooms := []Room{}
	if err := sqlx.SelectContext(ctx, r.q, &rooms, query); err != nil {
		return nil, err
	}

	return rooms, nil
}

func (r *repository) CreateBooking(ctx context.Context, roomID, adminID int, w interval.Window) (*Booking, error) {
	query := `
		INSERT INTO room_bookings (room_id, admin_id, is_booked, start_time, end_time)
		VALUES ($1, $2, FALSE, $3, $4)
		RETURNING id, room_id, admin_id, is_booked, start_time, end_time, created_at
	`

	var b Booking
	err := sqlx.GetContext(ctx, r.q, &b, query, roomID, adminID, w.Start, w.End)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("admin %d: %w", adminID, apperror.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return &b, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id int) (*Booking, error) {
	query := `
		SELECT id, room_id, admin_id, is_booked, start_time, end_time, created_at
		FROM room_bookings
		WHERE id = $1
	`

	var b Booking
	if err := sqlx.GetContext(ctx, r.q, &b, query, id); err != nil {
		return nil, db.NotFound(err, fmt.Sprintf("booking %d", id))
	}

	return &b, nil
}

// ListActiveBookings returns the room's bookings that block new reservations.
func (r *repository) ListActiveBookings(ctx context.Context, roomID int) ([]Booking, error) {
	query := `
		SELECT id, room_id, admin_id, is_booked, start_time, end_time, created_at
		FROM room_bookings
		WHERE room_id = $1 AND is_booked = TRUE
		ORDER BY start_time
	`

	bookings := []Booking{}
	if err := sqlx.SelectContext(ctx, r.q, &bookings, query, roomID); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListBookingsByRoom(ctx context.Context, roomID int) ([]Booking, error) {
	query := `
		SELECT id, room_id, admin_id, is_booked, start_time, end_time, created_at
		FROM room_bookings
		WHERE room_id = $1
		ORDER BY start_time, id
	`

	bookings := []Booking{}
	if err := sqlx.SelectContext(ctx, r.q, &bookings, query, roomID); err != nil {
		return nil, err
	}

	return bookings, nil
}

// PromoteBooking marks a placeholder as booked. The statement re-checks the
// room for other booked overlapping rows, so a lost race affects no rows.
func (r *repository) PromoteBooking(ctx context.Context, id int) error {
	query := `
		UPDATE room_bookings b
		SET is_booked = TRUE
		WHERE b.id = $1
		  AND b.is_booked = FALSE
		  AND NOT EXISTS (
			SELECT 1 FROM room_bookings o
			WHERE o.room_id = b.room_id
			  AND o.id <> b.id
			  AND o.is_booked = TRUE
			  AND o.start_time < b.end_time
			  AND b.start_time < o.end_time
		  )
	`

	result, err := r.q.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("booking %d: %w: %v", id, apperror.ErrBookingRace, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return fmt.Errorf("booking %d: %w", id, apperror.ErrBookingRace)
	}

	return nil
}
