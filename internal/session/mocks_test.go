package session

import (
	"context"
	"time"

	"fitclub/internal/interval"
	"fitclub/internal/room"
	"fitclub/internal/trainer"
	"fitclub/internal/user"

	"github.com/stretchr/testify/mock"
)

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, trainerID, memberID, bookingID int) (*Session, error) {
	args := m.Called(ctx, trainerID, memberID, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockSessionRepo) LockByID(ctx context.Context, id int) (*Session, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockSessionRepo) Reassign(ctx context.Context, id, bookingID, trainerID int) (*Session, error) {
	args := m.Called(ctx, id, bookingID, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Session), args.Error(1)
}

func (m *MockSessionRepo) ListByMember(ctx context.Context, memberID int) ([]SessionWithDetails, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]SessionWithDetails), args.Error(1)
}

type MockTrainerRepo struct {
	mock.Mock
}

func (m *MockTrainerRepo) ListAvailability(ctx context.Context, trainerID int) ([]trainer.Availability, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Availability), args.Error(1)
}

func (m *MockTrainerRepo) ListSessionSlots(ctx context.Context, trainerID int) ([]trainer.Slot, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Slot), args.Error(1)
}

func (m *MockTrainerRepo) ListClassSlots(ctx context.Context, trainerID int) ([]trainer.Slot, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Slot), args.Error(1)
}

func (m *MockTrainerRepo) CreateTrainer(ctx context.Context, name string) (*trainer.Trainer, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) GetTrainerByID(ctx context.Context, id int) (*trainer.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) LockTrainer(ctx context.Context, id int) (*trainer.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) ListTrainers(ctx context.Context) ([]trainer.Trainer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) CreateAvailability(ctx context.Context, trainerID int, w interval.Window, recurring bool) (*trainer.Availability, error) {
	args := m.Called(ctx, trainerID, w, recurring)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Availability), args.Error(1)
}

// MockRoomRepo only answers booking lookups; room mutations are never part
// of session scheduling.
type MockRoomRepo struct {
	mock.Mock
	room.Repository
}

func (m *MockRoomRepo) GetBookingByID(ctx context.Context, id int) (*room.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Booking), args.Error(1)
}

// MockMemberRepo only answers member lookups.
type MockMemberRepo struct {
	mock.Mock
	user.Repository
}

func (m *MockMemberRepo) GetMemberByID(ctx context.Context, id int) (*user.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.Member), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendBookingConfirmation(ctx context.Context, email, name, bookingType, details string, when time.Time) error {
	args := m.Called(ctx, email, name, bookingType, details, when)
	return args.Error(0)
}
