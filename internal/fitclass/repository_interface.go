package fitclass

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	Create(ctx context.Context, c *FitnessClass) (*FitnessClass, error)
	GetByID(ctx context.Context, id int) (*FitnessClass, error)
	LockByID(ctx context.Context, id int) (*FitnessClass, error)
	List(ctx context.Context, name string) ([]ClassWithDetails, error)

	IsEnrolled(ctx context.Context, classID, memberID int) (bool, error)
	IncrementSignedUp(ctx context.Context, classID int) error
	AddMember(ctx context.Context, classID, memberID int) error
	ListMembers(ctx context.Context, classID int) ([]GroupMember, error)
}

type RepositoryFactory func(q sqlx.ExtContext) Repository
