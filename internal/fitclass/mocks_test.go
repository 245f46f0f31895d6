package fitclass

import (
	"context"
	"fmt"
	"time"

	"fitclub/internal/apperror"
	"fitclub/internal/interval"
	"fitclub/internal/room"
	"fitclub/internal/trainer"
	"fitclub/internal/user"

	"github.com/stretchr/testify/mock"
)

type MockClassRepo struct {
	mock.Mock
}

func (m *MockClassRepo) Create(ctx context.Context, c *FitnessClass) (*FitnessClass, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FitnessClass), args.Error(1)
}

func (m *MockClassRepo) GetByID(ctx context.Context, id int) (*FitnessClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FitnessClass), args.Error(1)
}

func (m *MockClassRepo) LockByID(ctx context.Context, id int) (*FitnessClass, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*FitnessClass), args.Error(1)
}

func (m *MockClassRepo) List(ctx context.Context, name string) ([]ClassWithDetails, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ClassWithDetails), args.Error(1)
}

func (m *MockClassRepo) IsEnrolled(ctx context.Context, classID, memberID int) (bool, error) {
	args := m.Called(ctx, classID, memberID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClassRepo) IncrementSignedUp(ctx context.Context, classID int) error {
	args := m.Called(ctx, classID)
	return args.Error(0)
}

func (m *MockClassRepo) AddMember(ctx context.Context, classID, memberID int) error {
	args := m.Called(ctx, classID, memberID)
	return args.Error(0)
}

func (m *MockClassRepo) ListMembers(ctx context.Context, classID int) ([]GroupMember, error) {
	args := m.Called(ctx, classID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]GroupMember), args.Error(1)
}

type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) CreateRoom(ctx context.Context, name string) (*room.Room, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Room), args.Error(1)
}

func (m *MockRoomRepo) GetRoomByName(ctx context.Context, name string) (*room.Room, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Room), args.Error(1)
}

func (m *MockRoomRepo) LockRoomByName(ctx context.Context, name string) (*room.Room, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Room), args.Error(1)
}

func (m *MockRoomRepo) ListRooms(ctx context.Context) ([]room.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]room.Room), args.Error(1)
}

func (m *MockRoomRepo) CreateBooking(ctx context.Context, roomID, adminID int, w interval.Window) (*room.Booking, error) {
	args := m.Called(ctx, roomID, adminID, w)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Booking), args.Error(1)
}

func (m *MockRoomRepo) GetBookingByID(ctx context.Context, id int) (*room.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*room.Booking), args.Error(1)
}

func (m *MockRoomRepo) ListActiveBookings(ctx context.Context, roomID int) ([]room.Booking, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]room.Booking), args.Error(1)
}

func (m *MockRoomRepo) ListBookingsByRoom(ctx context.Context, roomID int) ([]room.Booking, error) {
	args := m.Called(ctx, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]room.Booking), args.Error(1)
}

func (m *MockRoomRepo) PromoteBooking(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTrainerRepo answers the lock and calendar reads used by class creation.
type MockTrainerRepo struct {
	mock.Mock
	trainer.Repository
}

func (m *MockTrainerRepo) LockTrainer(ctx context.Context, id int) (*trainer.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
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

// MockMemberRepo answers member lookups.
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

// classStore is an in-memory Repository holding enrollment state, for
// exercising sequences of enrollments against one class.
type classStore struct {
	classes map[int]*FitnessClass
	members map[int]map[int]bool
}

func newClassStore(classes ...FitnessClass) *classStore {
	s := &classStore{classes: map[int]*FitnessClass{}, members: map[int]map[int]bool{}}
	for i := range classes {
		c := classes[i]
		s.classes[c.ID] = &c
		s.members[c.ID] = map[int]bool{}
	}
	return s
}

func (s *classStore) Create(ctx context.Context, c *FitnessClass) (*FitnessClass, error) {
	created := *c
	created.ID = len(s.classes) + 1
	s.classes[created.ID] = &created
	s.members[created.ID] = map[int]bool{}
	return &created, nil
}

func (s *classStore) GetByID(ctx context.Context, id int) (*FitnessClass, error) {
	c, ok := s.classes[id]
	if !ok {
		return nil, fmt.Errorf("class %d: %w", id, apperror.ErrNotFound)
	}
	cp := *c
	return &cp, nil
}

func (s *classStore) LockByID(ctx context.Context, id int) (*FitnessClass, error) {
	return s.GetByID(ctx, id)
}

func (s *classStore) List(ctx context.Context, name string) ([]ClassWithDetails, error) {
	return nil, nil
}

func (s *classStore) IsEnrolled(ctx context.Context, classID, memberID int) (bool, error) {
	return s.members[classID][memberID], nil
}

func (s *classStore) IncrementSignedUp(ctx context.Context, classID int) error {
	c := s.classes[classID]
	if c.NumSignedUp >= c.Capacity {
		return fmt.Errorf("class %d: %w", classID, apperror.ErrClassFull)
	}
	c.NumSignedUp++
	return nil
}

func (s *classStore) AddMember(ctx context.Context, classID, memberID int) error {
	if s.members[classID][memberID] {
		return apperror.ErrAlreadyEnrolled
	}
	s.members[classID][memberID] = true
	return nil
}

func (s *classStore) ListMembers(ctx context.Context, classID int) ([]GroupMember, error) {
	out := []GroupMember{}
	for id := range s.members[classID] {
		out = append(out, GroupMember{ClassID: classID, MemberID: id})
	}
	return out, nil
}
