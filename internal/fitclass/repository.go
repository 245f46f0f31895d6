package fitclass

import (
	"context"
	"fmt"

	"fitclub/internal/apperror"
	"fitclub/internal/db"

	"github.com/jmoiron/sqlx"
)

const classColumns = "id, trainer_id, booking_id, name, capacity, num_signed_up, created_at"

type repository struct {
	q sqlx.ExtContext
}

func NewRepository(q sqlx.ExtContext) Repository {
	return &repository{q: q}
}

func (r *repository) Create(ctx context.Context, c *FitnessClass) (*FitnessClass, error) {
	query := `
		INSERT INTO fitness_classes (trainer_id, booking_id, name, capacity, num_signed_up)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING ` + classColumns

	var created FitnessClass
	err := sqlx.GetContext(ctx, r.q, &created, query, c.TrainerID, c.BookingID, c.Name, c.Capacity)
	switch {
	case err == nil:
		return &created, nil
	case db.IsForeignKeyViolation(err):
		return nil, fmt.Errorf("class references: %w", apperror.ErrNotFound)
	case db.IsUniqueViolation(err, "fitness_classes_booking_id_key"):
		return nil, fmt.Errorf("booking %d already hosts a class: %w", c.BookingID, apperror.ErrDuplicate)
	case db.IsCheckViolation(err):
		return nil, fmt.Errorf("capacity %d: %w", c.Capacity, apperror.ErrInvalidInput)
	default:
		return nil, fmt.Errorf("failed to create class: %w", err)
	}
}

func (r *repository) GetByID(ctx context.Context, id int) (*FitnessClass, error) {
	query := `SELECT ` + classColumns + ` FROM fitness_classes WHERE id = $1`

	var c FitnessClass
	if err := sqlx.GetContext(ctx, r.q, &c, query, id); err != nil {
		return nil, db.NotFound(err, fmt.Sprintf("class %d", id))
	}

	return &c, nil
}

// LockByID reads the class row FOR UPDATE; concurrent enrollments in the
// same class queue behind it until commit.
func (r *repository) LockByID(ctx context.Context, id int) (*FitnessClass, error) {
	query := `SELECT ` + classColumns + ` FROM fitness_classes WHERE id = $1 FOR UPDATE`

	var c FitnessClass
	if err := sqlx.GetContext(ctx, r.q, &c, query, id); err != nil {
		return nil, db.NotFound(err, fmt.Sprintf("class %d", id))
	}

	return &c, nil
}

// List returns classes ordered by name. A non-empty name restricts the
// result to classes with exactly that name.
func (r *repository) List(ctx context.Context, name string) ([]ClassWithDetails, error) {
	query := `
		SELECT c.id, c.trainer_id, c.booking_id, c.name, c.capacity, c.num_signed_up, c.created_at,
		       t.name AS trainer_name, rm.name AS room_name, b.start_time, b.end_time
		FROM fitness_classes c
		JOIN trainers t ON t.id = c.trainer_id
		JOIN room_bookings b ON b.id = c.booking_id
		JOIN rooms rm ON rm.id = b.room_id
		WHERE ($1 = '' OR c.name = $1)
		ORDER BY c.name, b.start_time
	`

	classes := []ClassWithDetails{}
	if err := sqlx.SelectContext(ctx, r.q, &classes, query, name); err != nil {
		return nil, err
	}

	return classes, nil
}

func (r *repository) IsEnrolled(ctx context.Context, classID, memberID int) (bool, error) {
	return db.Exists(ctx, r.q,
		`SELECT EXISTS(SELECT 1 FROM group_members WHERE class_id = $1 AND member_id = $2)`,
		classID, memberID)
}

// IncrementSignedUp adds one seat. The guard in the WHERE clause keeps the
// count within capacity even if the caller's read was stale.
func (r *repository) IncrementSignedUp(ctx context.Context, classID int) error {
	query := `
		UPDATE fitness_classes
		SET num_signed_up = num_signed_up + 1
		WHERE id = $1 AND num_signed_up < capacity
	`

	result, err := r.q.ExecContext(ctx, query, classID)
	if err != nil {
		return fmt.Errorf("failed to update class %d: %w", classID, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("class %d: %w", classID, apperror.ErrClassFull)
	}

	return nil
}

func (r *repository) AddMember(ctx context.Context, classID, memberID int) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO group_members (class_id, member_id) VALUES ($1, $2)`,
		classID, memberID)
	switch {
	case err == nil:
		return nil
	case db.IsUniqueViolation(err, "group_members_pkey"):
		return fmt.Errorf("class %d, member %d: %w", classID, memberID, apperror.ErrAlreadyEnrolled)
	case db.IsForeignKeyViolation(err):
		return fmt.Errorf("enrollment references: %w", apperror.ErrNotFound)
	default:
		return fmt.Errorf("failed to enroll member %d: %w", memberID, err)
	}
}

func (r *repository) ListMembers(ctx context.Context, classID int) ([]GroupMember, error) {
	query := `
		SELECT g.class_id, g.member_id, m.name AS member_name, g.created_at AS enrolled_at
		FROM group_members g
		JOIN members m ON m.id = g.member_id
		WHERE g.class_id = $1
		ORDER BY g.created_at, m.name
	`

	members := []GroupMember{}
	if err := sqlx.SelectContext(ctx, r.q, &members, query, classID); err != nil {
		return nil, err
	}

	return members, nil
}
