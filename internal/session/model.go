package session

import (
	"time"

	"fitclub/internal/interval"
)

// Session is a one-on-one training appointment. Its window is the window of
// the room booking it references.
type Session struct {
	ID        int       `db:"id" json:"id"`
	TrainerID int       `db:"trainer_id" json:"trainer_id"`
	MemberID  int       `db:"member_id" json:"member_id"`
	BookingID int       `db:"booking_id" json:"booking_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type SessionWithDetails struct {
	Session
	TrainerName string    `db:"trainer_name" json:"trainer_name"`
	RoomName    string    `db:"room_name" json:"room_name"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	EndTime     time.Time `db:"end_time" json:"end_time"`
}

func (s SessionWithDetails) Window() interval.Window {
	return interval.Window{Start: s.StartTime, End: s.EndTime}
}

type BookSessionRequest struct {
	MemberID  int `json:"member_id" binding:"required,min=1" example:"1"`
	TrainerID int `json:"trainer_id" binding:"required,min=1" example:"1"`
	BookingID int `json:"booking_id" binding:"required,min=1" example:"1"`
}

// RescheduleSessionRequest moves a session to another booking. TrainerID 0
// keeps the current trainer.
type RescheduleSessionRequest struct {
	MemberID  int `json:"member_id" binding:"required,min=1" example:"1"`
	BookingID int `json:"booking_id" binding:"required,min=1" example:"2"`
	TrainerID int `json:"trainer_id" binding:"omitempty,min=1" example:"0"`
}
