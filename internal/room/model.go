package room

import (
	"time"

	"fitclub/internal/interval"
)

type Room struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Booking reserves a room for [StartTime, EndTime). IsBooked is false while
// the reservation is a placeholder and true once an activity claims it.
type Booking struct {
	ID        int       `db:"id" json:"id"`
	RoomID    int       `db:"room_id" json:"room_id"`
	AdminID   int       `db:"admin_id" json:"admin_id"`
	IsBooked  bool      `db:"is_booked" json:"is_booked"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (b Booking) Window() interval.Window {
	return interval.Window{Start: b.StartTime, End: b.EndTime}
}

type CreateRoomRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Studio A"`
}

type BookRoomRequest struct {
	AdminID   int    `json:"admin_id" binding:"required,min=1" example:"1"`
	RoomName  string `json:"room_name" binding:"required,min=1,max=255" example:"Studio A"`
	StartDate string `json:"start_date" binding:"required" example:"2025-01-01"`
	StartTime string `json:"start_time" binding:"required" example:"10:00"`
	EndDate   string `json:"end_date" binding:"required" example:"2025-01-01"`
	EndTime   string `json:"end_time" binding:"required" example:"11:00"`
}
