package trainer

import (
	"context"
	"fmt"
	"sort"

	"fitclub/internal/apperror"
	"fitclub/internal/db"
	"fitclub/internal/interval"
	"fitclub/internal/logger"
	"fitclub/internal/metrics"

	"github.com/jmoiron/sqlx"
)

type Service interface {
	RegisterTrainer(ctx context.Context, name string) (*Trainer, error)
	ListTrainers(ctx context.Context) ([]Trainer, error)
	SetAvailability(ctx context.Context, trainerID int, w interval.Window, recurring bool) (*Availability, error)
	GetAvailability(ctx context.Context, trainerID int) ([]Availability, error)
	GetSchedule(ctx context.Context, trainerID int) (*Schedule, error)
}

type service struct {
	db      sqlx.ExtContext
	tx      db.Transactor
	newRepo RepositoryFactory
}

func NewService(database sqlx.ExtContext, tx db.Transactor, newRepo RepositoryFactory) Service {
	return &service{
		db:      database,
		tx:      tx,
		newRepo: newRepo,
	}
}

func (s *service) RegisterTrainer(ctx context.Context, name string) (*Trainer, error) {
	t, err := s.newRepo(s.db).CreateTrainer(ctx, name)
	if err != nil {
		return nil, err
	}
	logger.Info("trainer registered", "trainer_id", t.ID, "name", t.Name)
	return t, nil
}

func (s *service) ListTrainers(ctx context.Context) ([]Trainer, error) {
	return s.newRepo(s.db).ListTrainers(ctx)
}

// SetAvailability only checks the trainer's other availability windows;
// sessions and classes are not consulted.
func (s *service) SetAvailability(ctx context.Context, trainerID int, w interval.Window, recurring bool) (avail *Availability, err error) {
	defer func() { metrics.RecordOperation("set_availability", err) }()

	if w, err = interval.New(w.Start, w.End); err != nil {
		return nil, err
	}

	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		repo := s.newRepo(tx)

		if _, err := repo.LockTrainer(ctx, trainerID); err != nil {
			return err
		}

		existing, err := repo.ListAvailability(ctx, trainerID)
		if err != nil {
			return err
		}
		windows := make([]interval.Window, len(existing))
		for i, a := range existing {
			windows[i] = a.Window()
		}
		if i, ok := interval.FirstConflict(w, windows); ok {
			return fmt.Errorf("%w: trainer %d already available %s", apperror.ErrAvailabilityConflict, trainerID, windows[i])
		}

		avail, err = repo.CreateAvailability(ctx, trainerID, w, recurring)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("availability set",
		"availability_id", avail.ID,
		"trainer_id", trainerID,
		"window", w.String(),
		"recurring", recurring,
	)
	return avail, nil
}

func (s *service) GetAvailability(ctx context.Context, trainerID int) ([]Availability, error) {
	repo := s.newRepo(s.db)
	if _, err := repo.GetTrainerByID(ctx, trainerID); err != nil {
		return nil, err
	}
	return repo.ListAvailability(ctx, trainerID)
}

// GetSchedule merges the trainer's sessions and classes in start order.
func (s *service) GetSchedule(ctx context.Context, trainerID int) (*Schedule, error) {
	repo := s.newRepo(s.db)

	t, err := repo.GetTrainerByID(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	sessions, err := repo.ListSessionSlots(ctx, trainerID)
	if err != nil {
		return nil, err
	}
	classes, err := repo.ListClassSlots(ctx, trainerID)
	if err != nil {
		return nil, err
	}

	slots := append(sessions, classes...)
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})

	return &Schedule{Trainer: *t, Slots: slots}, nil
}
