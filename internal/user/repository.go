package user

import (
	"context"
	"fmt"
	"time"

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

func (r *repository) CreateMember(ctx context.Context, name string, dob *time.Time, gender, contact string) (*Member, error) {
	query := `
		INSERT INTO members (name, date_of_birth, gender, contact_detail)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, date_of_birth, gender, contact_detail, created_at
	`

	var m Member
	if err := sqlx.GetContext(ctx, r.q, &m, query, name, dob, gender, contact); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, fmt.Errorf("member %q: %w", name, apperror.ErrDuplicate)
		}
		return nil, err
	}

	return &m, nil
}

func (r *repository) GetMemberByID(ctx context.Context, id int) (*Member, error) {
	query := `
		SELECT id, name, date_of_birth, gender, contact_detail, created_at
		FROM members
		WHERE id = $1
	`

	var m Member
	if err := sqlx.GetContext(ctx, r.q, &m, query, id); err != nil {
		return nil, db.NotFound(err, fmt.Sprintf("member %d", id))
	}

	return &m, nil
}

func (r *repository) FindMemberByName(ctx context.Context, name string) (*Member, error) {
	query := `
		SELECT id, name, date_of_birth, gender, contact_detail, created_at
		FROM members
		WHERE name = $1
	`

	var m Member
	if err := sqlx.GetContext(ctx, r.q, &m, query, name); err != nil {
		return nil, db.NotFound(err, "member "+name)
	}

	return &m, nil
}

func (r *repository) MemberExists(ctx context.Context, name, contact string) (bool, error) {
	return db.Exists(ctx, r.q,
		`SELECT EXISTS(SELECT 1 FROM members WHERE name = $1 OR contact_detail = $2)`,
		name, contact,
	)
}

func (r *repository) CreateAdmin(ctx context.Context, name string) (*Admin, error) {
	query := `
		INSERT INTO admins (name)
		VALUES ($1)
		RETURNING id, name, created_at
	`

	var a Admin
	if err := sqlx.GetContext(ctx, r.q, &a, query, name); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, fmt.Errorf("admin %q: %w", name, apperror.ErrDuplicate)
		}
		return nil, err
	}

	return &a, nil
}

func (r *repository) GetAdminByID(ctx context.Context, id int) (*Admin, error) {
	query := `
		SELECT id, name, created_at
		FROM admins
		WHERE id = $1
	`

	var a Admin
	if err := sqlx.GetContext(ctx, r.q, &a, query, id); err != nil {
		return nil, db.NotFound(err, fmt.Sprintf("admin %d", id))
	}

	return &a, nil
}

func (r *repository) FindAdminByName(ctx context.Context, name string) (*Admin, error) {
	query := `
		SELECT id, name, created_at
		FROM admins
		WHERE name = $1
	`

	var a Admin
	if err := sqlx.GetContext(ctx, r.q, &a, query, name); err != nil {
		return nil, db.NotFound(err, "admin "+name)
	}

	return &a, nil
}

func (r *repository) ListAdmins(ctx context.Context) ([]Admin, error) {
	query := `
		SELECT id, name, created_at
		FROM admins
		ORDER BY id
	`

	admins := []Admin{}
	if err := sqlx.SelectContext(ctx, r.q, &admins, query); err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	return admins, nil
}
