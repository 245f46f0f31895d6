package equipment

import (
	"context"
	"fmt"

	"fitclub/internal/apperror"
	"fitclub/internal/logger"

	"github.com/jmoiron/sqlx"
)

type Service interface {
	AddMaintenance(ctx context.Context, adminID int, req CreateMaintenanceRequest) (*Maintenance, error)
	ListMaintenance(ctx context.Context, adminID int) ([]Maintenance, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Maintenance, error)
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

// AddMaintenance logs a new operation for adminID. Status defaults to open.
func (s *service) AddMaintenance(ctx context.Context, adminID int, req CreateMaintenanceRequest) (*Maintenance, error) {
	status := req.Status
	if status == "" {
		status = StatusOpen
	}

	m, err := s.newRepo(s.db).Create(ctx, adminID, req.Operation, status)
	if err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"maintenance_id": m.ID,
		"admin_id":       adminID,
		"status":         m.Status,
	}).Info("equipment maintenance recorded")
	return m, nil
}

func (s *service) ListMaintenance(ctx context.Context, adminID int) ([]Maintenance, error) {
	repo := s.newRepo(s.db)

	exists, err := repo.AdminExists(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("admin %d: %w", adminID, apperror.ErrNotFound)
	}

	return repo.ListByAdmin(ctx, adminID)
}

func (s *service) UpdateStatus(ctx context.Context, id int, status string) (*Maintenance, error) {
	m, err := s.newRepo(s.db).UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	logger.WithFields(map[string]interface{}{
		"maintenance_id": m.ID,
		"status":         m.Status,
	}).Info("equipment maintenance updated")
	return m, nil
}
