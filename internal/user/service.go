package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fitclub/internal/apperror"
	"fitclub/internal/interval"
	"fitclub/internal/logger"

	"github.com/jmoiron/sqlx"
)

type Service interface {
	RegisterMember(ctx context.Context, req RegisterMemberRequest) (*Member, error)
	RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (*Admin, error)
	GetMember(ctx context.Context, id int) (*Member, error)
	FindMemberByName(ctx context.Context, name string) (*Member, error)
	FindAdminByName(ctx context.Context, name string) (*Admin, error)
	ListAdmins(ctx context.Context) ([]Admin, error)
}

type service struct {
	db      sqlx.ExtContext
	newRepo RepositoryFactory
}

func NewService(database sqlx.ExtContext, newRepo RepositoryFactory) Service {
	return &service{
		db:      database,
		newRepo: newRepo,
	}
}

func (s *service) RegisterMember(ctx context.Context, req RegisterMemberRequest) (*Member, error) {
	repo := s.newRepo(s.db)

	var dob *time.Time
	if d := strings.TrimSpace(req.DateOfBirth); d != "" {
		parsed, err := time.Parse(interval.DateLayout, d)
		if err != nil {
			return nil, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", apperror.ErrInvalidInput)
		}
		dob = &parsed
	}

	exists, err := repo.MemberExists(ctx, req.Name, req.ContactDetail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("member %q: %w", req.Name, apperror.ErrDuplicate)
	}

	m, err := repo.CreateMember(ctx, req.Name, dob, req.Gender, req.ContactDetail)
	if err != nil {
		return nil, err
	}

	logger.Info("member registered", "member_id", m.ID)
	return m, nil
}

func (s *service) RegisterAdmin(ctx context.Context, req RegisterAdminRequest) (*Admin, error) {
	a, err := s.newRepo(s.db).CreateAdmin(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	logger.Info("admin registered", "admin_id", a.ID)
	return a, nil
}

func (s *service) GetMember(ctx context.Context, id int) (*Member, error) {
	return s.newRepo(s.db).GetMemberByID(ctx, id)
}

func (s *service) FindMemberByName(ctx context.Context, name string) (*Member, error) {
	return s.newRepo(s.db).FindMemberByName(ctx, name)
}

func (s *service) FindAdminByName(ctx context.Context, name string) (*Admin, error) {
	return s.newRepo(s.db).FindAdminByName(ctx, name)
}

func (s *service) ListAdmins(ctx context.Context) ([]Admin, error) {
	return s.newRepo(s.db).ListAdmins(ctx)
}
