package booking

import (
	"context"
	"time"

	"github.com/maison-lumiere/storefront/internal/showroom"
)

// Decision is an availability verdict for a specific slot request. Reason is
// set only when Available is false.
type Decision struct {
	Available bool
	Reason    string
}

// AvailabilityChecker answers "is this slot still bookable" at submit time.
// Today's implementation re-derives the slot grid locally; a real reservation
// backend can be swapped in behind this interface without touching the
// wizard.
type AvailabilityChecker interface {
	Check(ctx context.Context, loc showroom.Location, date time.Time, slotID string) (Decision, error)
}

// GridChecker validates a requested slot against the derived grid for that
// showroom and date. It catches stale slot ids (closed day, out-of-hours
// slot) but cannot see other customers' bookings.
type GridChecker struct{}

func (GridChecker) Check(_ context.Context, loc showroom.Location, date time.Time, slotID string) (Decision, error) {
	slots := AvailableSlots(loc, date)
	if len(slots) == 0 {
		return Decision{Available: false, Reason: "the showroom is closed on the selected date"}, nil
	}
	slot, ok := findSlot(slots, slotID)
	if !ok {
		return Decision{Available: false, Reason: "the selected time slot is no longer available"}, nil
	}
	if !slot.Available {
		return Decision{Available: false, Reason: "the selected time slot is no longer available"}, nil
	}
	return Decision{Available: true}, nil
}

// CheckerFunc adapts a function to the AvailabilityChecker interface.
type CheckerFunc func(ctx context.Context, loc showroom.Location, date time.Time, slotID string) (Decision, error)

func (f CheckerFunc) Check(ctx context.Context, loc showroom.Location, date time.Time, slotID string) (Decision, error) {
	return f(ctx, loc, date, slotID)
}
