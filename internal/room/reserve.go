package room

import (
	"context"
	"errors"
	"fmt"

	"fitclub/internal/apperror"
	"fitclub/internal/interval"
)

type ReserveParams struct {
	AdminID  int
	RoomName string
	Window   interval.Window
	// CreateMissing registers an unknown room instead of failing with NotFound.
	CreateMissing bool
}

// Reserve inserts a placeholder booking (is_booked = false) for the room.
// It must run inside a transaction: the room row stays locked until commit
// so no concurrent reservation can slip between the conflict check and the
// insert. Only bookings with is_booked = true block the window.
func Reserve(ctx context.Context, repo Repository, p ReserveParams) (*Room, *Booking, error) {
	w, err := interval.New(p.Window.Start, p.Window.End)
	if err != nil {
		return nil, nil, err
	}

	room, err := repo.LockRoomByName(ctx, p.RoomName)
	if err != nil {
		if !errors.Is(err, apperror.ErrNotFound) || !p.CreateMissing {
			return nil, nil, err
		}
		if _, err := repo.CreateRoom(ctx, p.RoomName); err != nil {
			return nil, nil, err
		}
		if room, err = repo.LockRoomByName(ctx, p.RoomName); err != nil {
			return nil, nil, err
		}
	}

	active, err := repo.ListActiveBookings(ctx, room.ID)
	if err != nil {
		return nil, nil, err
	}

	windows := make([]interval.Window, len(active))
	for i, b := range active {
		windows[i] = b.Window()
	}
	if i, ok := interval.FirstConflict(w, windows); ok {
		return nil, nil, fmt.Errorf("%w: %s overlaps booking %d (%s)",
			apperror.ErrRoomConflict, room.Name, active[i].ID, windows[i])
	}

	booking, err := repo.CreateBooking(ctx, room.ID, p.AdminID, w)
	if err != nil {
		return nil, nil, err
	}

	return room, booking, nil
}

// Promote claims a placeholder booking for an activity. Call it in the same
// transaction that created the booking.
func Promote(ctx context.Context, repo Repository, booking *Booking) error {
	if err := repo.PromoteBooking(ctx, booking.ID); err != nil {
		return err
	}
	booking.IsBooked = true
	return nil
}
