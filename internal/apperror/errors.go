package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidWindow        = errors.New("invalid time window")
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrDuplicate            = errors.New("already exists")
	ErrRoomConflict         = errors.New("room is already booked for an overlapping window")
	ErrAvailabilityConflict = errors.New("availability overlaps an existing window")
	ErrOutsideAvailability  = errors.New("window is outside the trainer's availability")
	ErrTrainerBusy          = errors.New("trainer has an overlapping session or class")
	ErrBookingRace          = errors.New("booking could not be promoted; a concurrent booking took the window")
	ErrAlreadyEnrolled      = errors.New("member is already enrolled in this class")
	ErrClassFull            = errors.New("class is full")
	ErrNotOwned             = errors.New("session does not belong to this member")
)

type entry struct {
	err    error
	status int
	code   string
}

var table = []entry{
	{ErrInvalidWindow, http.StatusBadRequest, "invalid_window"},
	{ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{ErrNotFound, http.StatusNotFound, "not_found"},
	{ErrNotOwned, http.StatusForbidden, "not_owned"},
	{ErrDuplicate, http.StatusConflict, "duplicate"},
	{ErrRoomConflict, http.StatusConflict, "room_conflict"},
	{ErrAvailabilityConflict, http.StatusConflict, "availability_conflict"},
	{ErrOutsideAvailability, http.StatusConflict, "outside_availability"},
	{ErrTrainerBusy, http.StatusConflict, "trainer_busy"},
	{ErrBookingRace, http.StatusConflict, "booking_race"},
	{ErrAlreadyEnrolled, http.StatusConflict, "already_enrolled"},
	{ErrClassFull, http.StatusConflict, "class_full"},
}

func lookup(err error) (entry, bool) {
	for _, e := range table {
		if errors.Is(err, e.err) {
			return e, true
		}
	}
	return entry{}, false
}

// HTTPStatus maps an error from the scheduling core to a response status.
// Unknown errors are 500.
func HTTPStatus(err error) int {
	if e, ok := lookup(err); ok {
		return e.status
	}
	return http.StatusInternalServerError
}

// Code returns a stable label for err, "ok" for nil and "internal" for
// anything outside the taxonomy.
func Code(err error) string {
	if err == nil {
		return "ok"
	}
	if e, ok := lookup(err); ok {
		return e.code
	}
	return "internal"
}

// IsConflict reports whether err is one of the scheduling conflict kinds.
func IsConflict(err error) bool {
	for _, target := range []error{ErrRoomConflict, ErrAvailabilityConflict, ErrOutsideAvailability, ErrTrainerBusy, ErrBookingRace} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Public reports whether err's text is safe to show to a caller.
func Public(err error) bool {
	_, ok := lookup(err)
	return ok
}
