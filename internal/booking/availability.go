package booking

import (
	"time"

	"github.com/annetv/item-sharing-backend/internal/item"
)

// CheckWindow enforces the creation-time rules that need no stored bookings:
// the item must be available, the booker must not own it, and the window must
// be a non-empty range lying strictly in the future. Rules are checked in this
// order and the first violation wins. The overlap scan against stored
// bookings is the orchestrator's job, performed under the per-item lock so
// that check and insert form one atomic unit.
func CheckWindow(it *item.Item, bookerID string, start, end, now time.Time) error {
	if !it.Available {
		return ErrItemUnavailable
	}
	if it.OwnerID == bookerID {
		return ErrOwnItemBooking
	}
	if !end.After(start) {
		return ErrInvalidTimeRange
	}
	if !start.After(now) {
		return ErrTimeInPast
	}
	return nil
}
