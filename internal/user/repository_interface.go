package user

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	CreateMember(ctx context.Context, name string, dob *time.Time, gender, contact string) (*Member, error)
	GetMemberByID(ctx context.Context, id int) (*Member, error)
	FindMemberByName(ctx context.Context, name string) (*Member, error)
	MemberExists(ctx context.Context, name, contact string) (bool, error)

	CreateAdmin(ctx context.Context, name string) (*Admin, error)
	GetAdminByID(ctx context.Context, id int) (*Admin, error)
	FindAdminByName(ctx context.Context, name string) (*Admin, error)
	ListAdmins(ctx context.Context) ([]Admin, error)
}

type RepositoryFactory func(q sqlx.ExtContext) Repository
