package fitclass

import (
	"context"
	"fmt"
	"time"

	"fitclub/internal/apperror"
	"fitclub/internal/db"
	"fitclub/internal/interval"
	"fitclub/internal/logger"
	"fitclub/internal/metrics"
	"fitclub/internal/room"
	"fitclub/internal/trainer"
	"fitclub/internal/user"

	"github.com/jmoiron/sqlx"
)

type Notifier interface {
	SendBookingConfirmation(ctx context.Context, email, name, bookingType, details string, when time.Time) error
}

type CreateClassParams struct {
	AdminID   int
	TrainerID int
	Name      string
	Capacity  int
	RoomName  string
	Window    interval.Window
}

type Service interface {
	CreateClass(ctx context.Context, p CreateClassParams) (*FitnessClass, error)
	Enroll(ctx context.Context, classID, memberID int) (*FitnessClass, error)
	ListClasses(ctx context.Context, name string) ([]ClassWithDetails, error)
	Roster(ctx context.Context, classID int) ([]GroupMember, error)
}

type Deps struct {
	DB       sqlx.ExtContext
	Tx       db.Transactor
	Classes  RepositoryFactory
	Trainers trainer.RepositoryFactory
	Rooms    room.RepositoryFactory
	Members  user.RepositoryFactory
	Notifier Notifier
}

type service struct {
	Deps
}

func NewService(deps Deps) Service {
	return &service{Deps: deps}
}

// CreateClass reserves the room, promotes the booking and validates the
// trainer in one transaction. Any failure leaves no booking behind. Unlike
// plain room bookings the room must already exist.
func (s *service) CreateClass(ctx context.Context, p CreateClassParams) (created *FitnessClass, err error) {
	defer func() { metrics.RecordOperation("create_class", err) }()

	if p.Capacity <= 0 {
		return nil, fmt.Errorf("capacity %d: %w", p.Capacity, apperror.ErrInvalidInput)
	}
	if _, err := interval.New(p.Window.Start, p.Window.End); err != nil {
		return nil, err
	}

	err = s.Tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		rooms := s.Rooms(tx)

		_, booking, err := room.Reserve(ctx, rooms, room.ReserveParams{
			AdminID:  p.AdminID,
			RoomName: p.RoomName,
			Window:   p.Window,
		})
		if err != nil {
			return err
		}
		if err := room.Promote(ctx, rooms, booking); err != nil {
			return err
		}

		trainers := s.Trainers(tx)
		if _, err := trainers.LockTrainer(ctx, p.TrainerID); err != nil {
			return err
		}
		if err := trainer.EnsureFree(ctx, trainers, p.TrainerID, booking.Window(), 0); err != nil {
			return err
		}

		created, err = s.Classes(tx).Create(ctx, &FitnessClass{
			TrainerID: p.TrainerID,
			BookingID: booking.ID,
			Name:      p.Name,
			Capacity:  p.Capacity,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("class created",
		"class_id", created.ID,
		"name", created.Name,
		"trainer_id", created.TrainerID,
		"booking_id", created.BookingID,
		"capacity", created.Capacity,
	)
	return created, nil
}

// Enroll adds memberID to the class. The class row is locked first so the
// seat count and the member row are written together or not at all.
func (s *service) Enroll(ctx context.Context, classID, memberID int) (class *FitnessClass, err error) {
	defer func() { metrics.RecordOperation("enroll", err) }()

	var member *user.Member

	err = s.Tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		classes := s.Classes(tx)

		var err error
		if class, err = classes.LockByID(ctx, classID); err != nil {
			return err
		}
		if member, err = s.Members(tx).GetMemberByID(ctx, memberID); err != nil {
			return err
		}

		enrolled, err := classes.IsEnrolled(ctx, classID, memberID)
		if err != nil {
			return err
		}
		if enrolled {
			return fmt.Errorf("class %d, member %d: %w", classID, memberID, apperror.ErrAlreadyEnrolled)
		}
		if class.Full() {
			return fmt.Errorf("class %d (%d/%d): %w", classID, class.NumSignedUp, class.Capacity, apperror.ErrClassFull)
		}

		if err := classes.IncrementSignedUp(ctx, classID); err != nil {
			return err
		}
		if err := classes.AddMember(ctx, classID, memberID); err != nil {
			return err
		}

		class.NumSignedUp++
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordEnrollment()
	logger.Info("member enrolled",
		"class_id", classID,
		"member_id", memberID,
		"signed_up", class.NumSignedUp,
		"capacity", class.Capacity,
	)
	s.notify(ctx, member, class)
	return class, nil
}

func (s *service) ListClasses(ctx context.Context, name string) ([]ClassWithDetails, error) {
	return s.Classes(s.DB).List(ctx, name)
}

func (s *service) Roster(ctx context.Context, classID int) ([]GroupMember, error) {
	classes := s.Classes(s.DB)
	if _, err := classes.GetByID(ctx, classID); err != nil {
		return nil, err
	}
	return classes.ListMembers(ctx, classID)
}

func (s *service) notify(ctx context.Context, m *user.Member, c *FitnessClass) {
	if s.Notifier == nil || m == nil || m.ContactDetail == "" {
		return
	}

	// read after commit; a failure only skips the email
	b, err := s.Rooms(s.DB).GetBookingByID(ctx, c.BookingID)
	if err != nil {
		logger.WithError(err).Warn("enrollment confirmation skipped", "class_id", c.ID)
		return
	}

	details := fmt.Sprintf("%s, %s", c.Name, b.Window())
	if err := s.Notifier.SendBookingConfirmation(ctx, m.ContactDetail, m.Name, "Group Class", details, b.StartTime); err != nil {
		logger.WithError(err).Warn("enrollment confirmation not queued", "member_id", m.ID)
	}
}
