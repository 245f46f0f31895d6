package trainer

import (
	"time"

	"fitclub/internal/interval"
)

type Trainer struct {
	ID        int       `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Availability is a window the trainer declared as free. IsRecurring is
// stored as given and never expanded into occurrences.
type Availability struct {
	ID          int       `db:"id" json:"id"`
	TrainerID   int       `db:"trainer_id" json:"trainer_id"`
	IsRecurring bool      `db:"is_recurring" json:"is_recurring"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	EndTime     time.Time `db:"end_time" json:"end_time"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

func (a Availability) Window() interval.Window {
	return interval.Window{Start: a.StartTime, End: a.EndTime}
}

const (
	SlotSession = "session"
	SlotClass   = "class"
)

// Slot is one commitment on a trainer's calendar: a PT session or a class,
// with the window of the room booking behind it.
type Slot struct {
	Kind      string    `db:"kind" json:"kind" example:"session"`
	RefID     int       `db:"ref_id" json:"ref_id"`
	BookingID int       `db:"booking_id" json:"booking_id"`
	RoomName  string    `db:"room_name" json:"room_name"`
	Label     string    `db:"label" json:"label"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
}

func (s Slot) Window() interval.Window {
	return interval.Window{Start: s.StartTime, End: s.EndTime}
}

type Schedule struct {
	Trainer Trainer `json:"trainer"`
	Slots   []Slot  `json:"slots"`
}

type CreateTrainerRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255" example:"Jordan"`
}

type SetAvailabilityRequest struct {
	StartDate   string `json:"start_date" binding:"required" example:"2025-01-02"`
	StartTime   string `json:"start_time" binding:"required" example:"09:00"`
	EndDate     string `json:"end_date" binding:"required" example:"2025-01-02"`
	EndTime     string `json:"end_time" binding:"required" example:"12:00"`
	IsRecurring bool   `json:"is_recurring"`
}
