package session

import (
	"context"
	"fmt"
	"time"

	"fitclub/internal/apperror"
	"fitclub/internal/db"
	"fitclub/internal/logger"
	"fitclub/internal/metrics"
	"fitclub/internal/room"
	"fitclub/internal/trainer"
	"fitclub/internal/user"

	"github.com/jmoiron/sqlx"
)

// Notifier delivers booking confirmations. Delivery problems are logged and
// never undo a committed session.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, email, name, bookingType, details string, when time.Time) error
}

type Service interface {
	BookSession(ctx context.Context, memberID, trainerID, bookingID int) (*Session, error)
	RescheduleSession(ctx context.Context, memberID, sessionID, newBookingID, newTrainerID int) (*Session, error)
	ListMemberSessions(ctx context.Context, memberID int) ([]SessionWithDetails, error)
}

type Deps struct {
	DB       sqlx.ExtContext
	Tx       db.Transactor
	Sessions RepositoryFactory
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

func (s *service) BookSession(ctx context.Context, memberID, trainerID, bookingID int) (created *Session, err error) {
	defer func() { metrics.RecordOperation("book_session", err) }()

	var (
		member  *user.Member
		coach   *trainer.Trainer
		booking *room.Booking
	)

	err = s.Tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		trainers := s.Trainers(tx)

		var err error
		if coach, err = trainers.LockTrainer(ctx, trainerID); err != nil {
			return err
		}
		if member, err = s.Members(tx).GetMemberByID(ctx, memberID); err != nil {
			return err
		}
		if booking, err = s.Rooms(tx).GetBookingByID(ctx, bookingID); err != nil {
			return err
		}

		if err := trainer.EnsureFree(ctx, trainers, trainerID, booking.Window(), 0); err != nil {
			return err
		}

		created, err = s.Sessions(tx).Create(ctx, trainerID, memberID, bookingID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("session booked",
		"session_id", created.ID,
		"trainer_id", trainerID,
		"member_id", memberID,
		"booking_id", bookingID,
	)
	s.notify(ctx, member, coach, booking, "Personal Training")
	return created, nil
}

// RescheduleSession moves a member's session to newBookingID, optionally
// handing it to another trainer. newTrainerID 0 keeps the current trainer.
// The moved session is ignored when checking the trainer's calendar.
func (s *service) RescheduleSession(ctx context.Context, memberID, sessionID, newBookingID, newTrainerID int) (moved *Session, err error) {
	defer func() { metrics.RecordOperation("reschedule_session", err) }()

	var (
		member  *user.Member
		coach   *trainer.Trainer
		booking *room.Booking
	)

	err = s.Tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		sessions := s.Sessions(tx)

		current, err := sessions.LockByID(ctx, sessionID)
		if err != nil {
			return err
		}
		if current.MemberID != memberID {
			return fmt.Errorf("%w: session %d, member %d", apperror.ErrNotOwned, sessionID, memberID)
		}

		targetTrainer := newTrainerID
		if targetTrainer == 0 {
			targetTrainer = current.TrainerID
		}

		trainers := s.Trainers(tx)
		if coach, err = trainers.LockTrainer(ctx, targetTrainer); err != nil {
			return err
		}
		if member, err = s.Members(tx).GetMemberByID(ctx, memberID); err != nil {
			return err
		}
		if booking, err = s.Rooms(tx).GetBookingByID(ctx, newBookingID); err != nil {
			return err
		}

		if err := trainer.EnsureFree(ctx, trainers, targetTrainer, booking.Window(), current.ID); err != nil {
			return err
		}

		moved, err = sessions.Reassign(ctx, current.ID, newBookingID, targetTrainer)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("session rescheduled",
		"session_id", moved.ID,
		"trainer_id", moved.TrainerID,
		"booking_id", moved.BookingID,
	)
	s.notify(ctx, member, coach, booking, "Personal Training (rescheduled)")
	return moved, nil
}

func (s *service) ListMemberSessions(ctx context.Context, memberID int) ([]SessionWithDetails, error) {
	if _, err := s.Members(s.DB).GetMemberByID(ctx, memberID); err != nil {
		return nil, err
	}
	return s.Sessions(s.DB).ListByMember(ctx, memberID)
}

func (s *service) notify(ctx context.Context, m *user.Member, t *trainer.Trainer, b *room.Booking, kind string) {
	if s.Notifier == nil || m == nil || m.ContactDetail == "" {
		return
	}

	details := fmt.Sprintf("with %s, %s", t.Name, b.Window())
	if err := s.Notifier.SendBookingConfirmation(ctx, m.ContactDetail, m.Name, kind, details, b.StartTime); err != nil {
		logger.WithError(err).Warn("session confirmation not queued", "member_id", m.ID)
	}
}
