package http

import (
	"time"

	"github.com/annetv/item-sharing-backend/internal/item"
)

type CreateItemBody struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Available   *bool   `json:"available" binding:"required"`
	RequestID   *string `json:"request_id" binding:"omitempty,uuid"`
}

type UpdateItemBody struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentBody struct {
	Text string `json:"text" binding:"required"`
}

type ItemResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Available   bool      `json:"available"`
	RequestID   *string   `json:"request_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewItemResponse(i *item.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		OwnerID:     i.OwnerID,
		Name:        i.Name,
		Description: i.Description,
		Available:   i.Available,
		RequestID:   i.RequestID,
		CreatedAt:   i.CreatedAt,
	}
}

type BookingWindowResponse struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func newBookingWindowResponse(w *item.BookingWindow) *BookingWindowResponse {
	if w == nil {
		return nil
	}
	return &BookingWindowResponse{ID: w.ID, Start: w.Start, End: w.End}
}

type CommentResponse struct {
	ID         string    `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewCommentResponse(c *item.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		AuthorName: c.AuthorName,
		Text:       c.Text,
		CreatedAt:  c.CreatedAt,
	}
}

type ItemDetailsResponse struct {
	ItemResponse
	Comments    []CommentResponse      `json:"comments"`
	LastBooking *BookingWindowResponse `json:"last_booking,omitempty"`
	NextBooking *BookingWindowResponse `json:"next_booking,omitempty"`
}

func NewItemDetailsResponse(d *item.Details) ItemDetailsResponse {
	comments := make([]CommentResponse, len(d.Comments))
	for i, c := range d.Comments {
		comments[i] = NewCommentResponse(&c)
	}
	return ItemDetailsResponse{
		ItemResponse: NewItemResponse(&d.Item),
		Comments:     comments,
		LastBooking:  newBookingWindowResponse(d.LastBooking),
		NextBooking:  newBookingWindowResponse(d.NextBooking),
	}
}

type ItemWithBookingsResponse struct {
	ItemResponse
	Bookings []BookingWindowResponse `json:"bookings"`
}

func NewItemWithBookingsResponse(w *item.WithBookings) ItemWithBookingsResponse {
	bookings := make([]BookingWindowResponse, len(w.Bookings))
	for i, b := range w.Bookings {
		bookings[i] = *newBookingWindowResponse(&b)
	}
	return ItemWithBookingsResponse{
		ItemResponse: NewItemResponse(&w.Item),
		Bookings:     bookings,
	}
}

// ItemTag is the short item reference embedded in other modules' responses.
type ItemTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
