package http

import (
	"time"

	"github.com/annetv/item-sharing-backend/internal/booking"
	itemHttp "github.com/annetv/item-sharing-backend/internal/item/http"
	userHttp "github.com/annetv/item-sharing-backend/internal/user/http"
)

type CreateBookingBody struct {
	ItemID string    `json:"item_id" binding:"required,uuid"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type BookingResponse struct {
	ID        string            `json:"id"`
	Item      itemHttp.ItemTag  `json:"item"`
	Booker    userHttp.UserTag  `json:"booker"`
	Start     time.Time         `json:"start"`
	End       time.Time         `json:"end"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		Item:      itemHttp.ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker:    userHttp.UserTag{ID: b.BookerID, Name: b.BookerName},
		Start:     b.Start,
		End:       b.End,
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
	}
}

func newBookingListResponse(bookings []*booking.Booking) []BookingResponse {
	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	return items
}
