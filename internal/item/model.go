package item

import (
	"context"
	"time"

	"github.com/annetv/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound              = apperror.NotFound("item not found")
	ErrNotOwner              = apperror.Authorization("only the owner can edit this item")
	ErrNameRequired          = apperror.Validation("item name is required")
	ErrDescriptionRequired   = apperror.Validation("item description is required")
	ErrCommentWithoutBooking = apperror.Validation("user must have a finished booking of the item to comment")
	ErrCommentTextRequired   = apperror.Validation("comment text is required")
)

// Item is a thing a user lends out. Available gates whether new bookings
// may be created for it; it does not affect existing bookings.
type Item struct {
	ID          string // UUID
	OwnerID     string
	OwnerName   string
	Name        string
	Description string
	Available   bool
	RequestID   *string // set when the item was published in response to an item request
	CreatedAt   time.Time
}

// Comment is feedback left by a user who has completed a booking of the item.
type Comment struct {
	ID         string
	ItemID     string
	AuthorID   string
	AuthorName string
	Text       string
	CreatedAt  time.Time
}

// BookingWindow is the slice of booking data the item views need: enough to
// show owners when their item is or was reserved, without pulling in the
// booking module.
type BookingWindow struct {
	ID    string
	Start time.Time
	End   time.Time
}

// BookingReader is the item module's read-only view into stored bookings.
// The booking module provides the implementation; depending on this interface
// instead of the booking package keeps the dependency one-directional.
type BookingReader interface {
	WindowsForItem(ctx context.Context, itemID string) ([]BookingWindow, error)
	LastForItem(ctx context.Context, itemID string, now time.Time) (*BookingWindow, error)
	NextForItem(ctx context.Context, itemID string, now time.Time) (*BookingWindow, error)
	HasFinishedBooking(ctx context.Context, itemID, userID string, now time.Time) (bool, error)
}

// Details is the single-item view: comments for everyone, the neighbouring
// booking windows only when the requester owns the item.
type Details struct {
	Item
	Comments    []Comment
	LastBooking *BookingWindow
	NextBooking *BookingWindow
}

// WithBookings is the owner's list view of an item with its booking windows.
type WithBookings struct {
	Item
	Bookings []BookingWindow
}
