package booking

import (
	"time"

	"github.com/annetv/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("booking not found")
	ErrItemUnavailable  = apperror.Validation("item is not available for booking")
	ErrOwnItemBooking   = apperror.Validation("owner cannot book their own item")
	ErrInvalidTimeRange = apperror.Validation("end time must be after start time")
	ErrTimeInPast       = apperror.Validation("booking window must lie in the future")
	ErrOverlap          = apperror.Validation("item is already booked during the selected time period")
	ErrNotParticipant   = apperror.Authorization("only the booker or the item owner can view this booking")
	ErrNotItemOwner     = apperror.Authorization("only the item owner can approve or reject a booking")
)

// Booking is a reservation of an item for a half-open time window [Start, End).
// It is created WAITING and mutated only through the approval transition;
// records are never physically deleted.
type Booking struct {
	ID         string // UUID
	ItemID     string
	ItemName   string
	OwnerID    string // owner of the booked item
	BookerID   string
	BookerName string
	Start      time.Time
	End        time.Time
	Status     Status
	CreatedAt  time.Time
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back windows, where one ends exactly when
// the other starts, do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Blocks reports whether this booking makes its window unavailable to others.
// Rejected and canceled bookings hold no claim on the item.
func (b *Booking) Blocks() bool {
	return b.Status == StatusWaiting || b.Status == StatusApproved
}
