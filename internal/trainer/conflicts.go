package trainer

import (
	"context"
	"fmt"

	"fitclub/internal/apperror"
	"fitclub/internal/interval"
)

// EnsureFree checks that trainerID can take on w:
//   - some availability window contains w (ErrOutsideAvailability)
//   - no PT session overlaps w (ErrTrainerBusy)
//   - no class overlaps w (ErrTrainerBusy)
//
// excludeSessionID skips one session, used when that session is the one
// being moved. Pass 0 to check against all sessions.
func EnsureFree(ctx context.Context, cal Calendar, trainerID int, w interval.Window, excludeSessionID int) error {
	avail, err := cal.ListAvailability(ctx, trainerID)
	if err != nil {
		return err
	}

	windows := make([]interval.Window, 0, len(avail))
	for _, a := range avail {
		windows = append(windows, a.Window())
	}
	if !interval.ContainedByAny(w, windows) {
		return fmt.Errorf("%w: trainer %d, %s", apperror.ErrOutsideAvailability, trainerID, w)
	}

	sessions, err := cal.ListSessionSlots(ctx, trainerID)
	if err != nil {
		return err
	}
	others := make([]Slot, 0, len(sessions))
	for _, s := range sessions {
		if s.RefID != excludeSessionID {
			others = append(others, s)
		}
	}
	if s, ok := firstClash(w, others); ok {
		return fmt.Errorf("%w: trainer %d has session %d at %s", apperror.ErrTrainerBusy, trainerID, s.RefID, s.Window())
	}

	classes, err := cal.ListClassSlots(ctx, trainerID)
	if err != nil {
		return err
	}
	if c, ok := firstClash(w, classes); ok {
		return fmt.Errorf("%w: trainer %d has class %d at %s", apperror.ErrTrainerBusy, trainerID, c.RefID, c.Window())
	}

	return nil
}

func firstClash(w interval.Window, slots []Slot) (Slot, bool) {
	windows := make([]interval.Window, len(slots))
	for i, s := range slots {
		windows[i] = s.Window()
	}
	i, ok := interval.FirstConflict(w, windows)
	if !ok {
		return Slot{}, false
	}
	return slots[i], true
}
