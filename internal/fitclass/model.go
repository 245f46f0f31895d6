package fitclass

import (
	"time"

	"fitclub/internal/interval"
)

// FitnessClass is a group class held in exactly one promoted room booking.
// NumSignedUp always equals the number of enrolled members.
type FitnessClass struct {
	ID          int       `db:"id" json:"id"`
	TrainerID   int       `db:"trainer_id" json:"trainer_id"`
	BookingID   int       `db:"booking_id" json:"booking_id"`
	Name        string    `db:"name" json:"name"`
	Capacity    int       `db:"capacity" json:"capacity"`
	NumSignedUp int       `db:"num_signed_up" json:"num_signed_up"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

func (c FitnessClass) Full() bool {
	return c.NumSignedUp >= c.Capacity
}

type ClassWithDetails struct {
	FitnessClass
	TrainerName string    `db:"trainer_name" json:"trainer_name"`
	RoomName    string    `db:"room_name" json:"room_name"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	EndTime     time.Time `db:"end_time" json:"end_time"`
}

func (c ClassWithDetails) Window() interval.Window {
	return interval.Window{Start: c.StartTime, End: c.EndTime}
}

// GroupMember is one enrollment, unique per (class, member).
type GroupMember struct {
	ClassID    int       `db:"class_id" json:"class_id"`
	MemberID   int       `db:"member_id" json:"member_id"`
	MemberName string    `db:"member_name" json:"member_name"`
	EnrolledAt time.Time `db:"enrolled_at" json:"enrolled_at"`
}

type CreateClassRequest struct {
	AdminID   int    `json:"admin_id" binding:"required,min=1" example:"1"`
	TrainerID int    `json:"trainer_id" binding:"required,min=1" example:"1"`
	ClassName string `json:"class_name" binding:"required,min=1,max=255" example:"Morning Yoga"`
	Capacity  int    `json:"capacity" binding:"required,min=1" example:"12"`
	RoomName  string `json:"room_name" binding:"required,min=1,max=255" example:"Studio A"`
	StartDate string `json:"start_date" binding:"required" example:"2025-01-02"`
	StartTime string `json:"start_time" binding:"required" example:"09:00"`
	EndDate   string `json:"end_date" binding:"required" example:"2025-01-02"`
	EndTime   string `json:"end_time" binding:"required" example:"10:00"`
}

type EnrollRequest struct {
	MemberID int `json:"member_id" binding:"required,min=1" example:"5"`
}
