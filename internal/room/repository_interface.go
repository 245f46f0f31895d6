package room

import (
	"context"

	"fitclub/internal/interval"

	"github.com/jmoiron/sqlx"
)

type Repository interface {
	CreateRoom(ctx context.Context, name string) (*Room, error)
	GetRoomByName(ctx context.Context, name string) (*Room, error)
	LockRoomByName(ctx context.Context, name string) (*Room, error)
	ListRooms(ctx context.Context) ([]Room, error)

	CreateBooking(ctx context.Context, roomID, adminID int, w interval.Window) (*Booking, error)
	GetBookingByID(ctx context.Context, id int) (*Booking, error)
	ListActiveBookings(ctx context.Context, roomID int) ([]Booking, error)
	ListBookingsByRoom(ctx context.Context, roomID int) ([]Booking, error)
	PromoteBooking(ctx context.Context, id int) error
}

// RepositoryFactory binds a Repository to the pool or to a transaction.
type RepositoryFactory func(q sqlx.ExtContext) Repository
