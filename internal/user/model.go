package user

import (
	"time"

	"github.com/annetv/item-sharing-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("user not found")
	ErrEmailAlreadyUsed = apperror.Conflict("email already used")
	ErrEmailRequired    = apperror.Validation("email is required")
	ErrNameRequired     = apperror.Validation("name is required")
)

// User represents a registered user. Users both publish items and book
// items published by others; the distinction is per item, not per account.
type User struct {
	ID        string // UUID
	Name      string
	Email     string
	CreatedAt time.Time
}
