package room

import (
	"context"

	"fitclub/internal/db"
	"fitclub/internal/interval"
	"fitclub/internal/logger"
	"fitclub/internal/metrics"

	"github.com/jmoiron/sqlx"
)

type Service interface {
	BookRoom(ctx context.Context, adminID int, roomName string, w interval.Window) (*Booking, error)
	CreateRoom(ctx context.Context, name string) (*Room, error)
	ListRooms(ctx context.Context) ([]Room, error)
	ListBookings(ctx context.Context, roomName string) ([]Booking, error)
	GetBooking(ctx context.Context, id int) (*Booking, error)
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

func (s *service) BookRoom(ctx context.Context, adminID int, roomName string, w interval.Window) (booking *Booking, err error) {
	defer func() { metrics.RecordOperation("book_room", err) }()

	err = s.tx.WithinTx(ctx, func(tx *sqlx.Tx) error {
		_, b, err := Reserve(ctx, s.newRepo(tx), ReserveParams{
			AdminID:       adminID,
			RoomName:      roomName,
			Window:        w,
			CreateMissing: true,
		})
		booking = b
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info("room booked",
		"booking_id", booking.ID,
		"room", roomName,
		"admin_id", adminID,
		"window", booking.Window().String(),
	)
	return booking, nil
}

func (s *service) CreateRoom(ctx context.Context, name string) (*Room, error) {
	return s.newRepo(s.db).CreateRoom(ctx, name)
}

func (s *service) ListRooms(ctx context.Context) ([]Room, error) {
	return s.newRepo(s.db).ListRooms(ctx)
}

func (s *service) ListBookings(ctx context.Context, roomName string) ([]Booking, error) {
	repo := s.newRepo(s.db)
	room, err := repo.GetRoomByName(ctx, roomName)
	if err != nil {
		return nil, err
	}
	return repo.ListBookingsByRoom(ctx, room.ID)
}

func (s *service) GetBooking(ctx context.Context, id int) (*Booking, error) {
	return s.newRepo(s.db).GetBookingByID(ctx, id)
}
