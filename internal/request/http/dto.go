package http

import (
	"time"

	itemHttp "github.com/annetv/item-sharing-backend/internal/item/http"
	"github.com/annetv/item-sharing-backend/internal/request"
)

type CreateRequestBody struct {
	Description string `json:"description" binding:"required"`
}

type RequestResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	RequestorID string    `json:"requestor_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewRequestResponse(r *request.Request) RequestResponse {
	return RequestResponse{
		ID:          r.ID,
		Description: r.Description,
		RequestorID: r.RequestorID,
		CreatedAt:   r.CreatedAt,
	}
}

type RequestWithItemsResponse struct {
	RequestResponse
	Items []itemHttp.ItemResponse `json:"items"`
}

func NewRequestWithItemsResponse(r *request.WithItems) RequestWithItemsResponse {
	items := make([]itemHttp.ItemResponse, len(r.Items))
	for i, it := range r.Items {
		items[i] = itemHttp.NewItemResponse(it)
	}
	return RequestWithItemsResponse{
		RequestResponse: NewRequestResponse(&r.Request),
		Items:           items,
	}
}
