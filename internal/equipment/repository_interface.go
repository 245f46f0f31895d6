package equipment

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	AdminExists(ctx context.Context, adminID int) (bool, error)
	Create(ctx context.Context, adminID int, operation, status string) (*Maintenance, error)
	ListByAdmin(ctx context.Context, adminID int) ([]Maintenance, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Maintenance, error)
}

type RepositoryFactory func(q sqlx.ExtContext) Repository
