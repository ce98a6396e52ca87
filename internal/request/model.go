package request

import (
	"time"

	"github.com/annetv/item-sharing-backend/internal/item"
	"github.com/annetv/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("item request not found")
	ErrDescriptionRequired = apperror.Validation("request description is required")
)

// Request is a wish for an item that is not in the catalog yet. Owners may
// publish items in response; those items reference the request.
type Request struct {
	ID            string // UUID
	Description   string
	RequestorID   string
	RequestorName string
	CreatedAt     time.Time
}

// WithItems is a request together with the items published in response to it.
type WithItems struct {
	Request
	Items []*item.Item
}
