package trainer

import (
	"context"

	"fitclub/internal/interval"

	"github.com/jmoiron/sqlx"
)

// Calendar is the read side of a trainer's commitments.
type Calendar interface {
	ListAvailability(ctx context.Context, trainerID int) ([]Availability, error)
	ListSessionSlots(ctx context.Context, trainerID int) ([]Slot, error)
	ListClassSlots(ctx context.Context, trainerID int) ([]Slot, error)
}

type Repository interface {
	Calendar

	CreateTrainer(ctx context.Context, name string) (*Trainer, error)
	GetTrainerByID(ctx context.Context, id int) (*Trainer, error)
	LockTrainer(ctx context.Context, id int) (*Trainer, error)
	ListTrainers(ctx context.Context) ([]Trainer, error)
	CreateAvailability(ctx context.Context, trainerID int, w interval.Window, recurring bool) (*Availability, error)
}

type RepositoryFactory func(q sqlx.ExtContext) Repository
