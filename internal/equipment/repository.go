package equipment

import (
	"context"
	"fmt"

	"fitclub/internal/apperror"
	"fitclub/internal/db"

	"github.com/jmoiron/sqlx"
)

const maintenanceColumns = `id, admin_id, operation, status, created_at, updated_at`

type repository struct {
	q sqlx.ExtContext
}

func NewRepository(q sqlx.ExtContext) Repository {
	return &repository{q: q}
}

func (r *repository) AdminExists(ctx context.Context, adminID int) (bool, error) {
	return db.Exists(ctx, r.q, `SELECT EXISTS(SELECT 1 FROM admins WHERE id = $1)`, adminID)
}

func (r *repository) Create(ctx context.Context, adminID int, operation, status string) (*Maintenance, error) {
	query := `
		INSERT INTO equipment_maintenance (admin_id, operation, status)
		VALUES ($1, $2, $3)
		RETURNING ` + maintenanceColumns

	var m Maintenance
	if err := sqlx.GetContext(ctx, r.q, &m, query, adminID, operation, status); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("admin %d: %w", adminID, apperror.ErrNotFound)
		}
		if db.IsCheckViolation(err) {
			return nil, fmt.Errorf("status %q: %w", status, apperror.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to create maintenance record: %w", err)
	}

	return &m, nil
}

// ListByAdmin returns the admin's records, newest first.
func (r *repository) ListByAdmin(ctx context.Context, adminID int) ([]Maintenance, error) {
	query := `
		SELECT ` + maintenanceColumns + `
		FROM equipment_maintenance
		WHERE admin_id = $1
		ORDER BY id DESC
	`

	records := []Maintenance{}
	if err := sqlx.SelectContext(ctx, r.q, &records, query, adminID); err != nil {
		return nil, fmt.Errorf("failed to list maintenance records: %w", err)
	}

	return records, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id int, status string) (*Maintenance, error) {
	query := `
		UPDATE equipment_maintenance
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + maintenanceColumns

	var m Maintenance
	if err := sqlx.GetContext(ctx, r.q, &m, query, id, status); err != nil {
		return nil, db.NotFound(err, fmt.Sprintf("maintenance record %d", id))
	}

	return &m, nil
}
