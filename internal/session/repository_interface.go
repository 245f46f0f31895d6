package session

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, trainerID, memberID, bookingID int) (*Session, error)
	LockByID(ctx context.Context, id int) (*Session, error)
	Reassign(ctx context.Context, id, bookingID, trainerID int) (*Session, error)
	ListByMember(ctx context.Context, memberID int) ([]SessionWithDetails, error)
}

type RepositoryFactory func(q sqlx.ExtContext) Repository
