package booking

import (
	"context"
	"time"

	"github.com/annetv/item-sharing-backend/internal/item"
)

// ItemReader adapts the booking repository to the item module's BookingReader
// interface, exposing booking windows without leaking booking types into the
// item package.
type ItemReader struct {
	repo Repository
}

func NewItemReader(repo Repository) *ItemReader {
	return &ItemReader{repo: repo}
}

func (r *ItemReader) WindowsForItem(ctx context.Context, itemID string) ([]item.BookingWindow, error) {
	bookings, err := r.repo.ListForItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	windows := make([]item.BookingWindow, len(bookings))
	for i, b := range bookings {
		windows[i] = toWindow(b)
	}
	return windows, nil
}

func (r *ItemReader) LastForItem(ctx context.Context, itemID string, now time.Time) (*item.BookingWindow, error) {
	b, err := r.repo.LastForItem(ctx, itemID, now)
	if err != nil || b == nil {
		return nil, err
	}
	w := toWindow(b)
	return &w, nil
}

func (r *ItemReader) NextForItem(ctx context.Context, itemID string, now time.Time) (*item.BookingWindow, error) {
	b, err := r.repo.NextForItem(ctx, itemID, now)
	if err != nil || b == nil {
		return nil, err
	}
	w := toWindow(b)
	return &w, nil
}

func (r *ItemReader) HasFinishedBooking(ctx context.Context, itemID, userID string, now time.Time) (bool, error) {
	return r.repo.HasFinished(ctx, itemID, userID, now)
}

func toWindow(b *Booking) item.BookingWindow {
	return item.BookingWindow{ID: b.ID, Start: b.Start, End: b.End}
}
