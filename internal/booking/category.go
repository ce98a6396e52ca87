package booking

import "strings"

// Category selects a temporal or status bucket when listing bookings.
type Category string

const (
	CategoryAll      Category = "ALL"
	CategoryCurrent  Category = "CURRENT"
	CategoryPast     Category = "PAST"
	CategoryFuture   Category = "FUTURE"
	CategoryWaiting  Category = "WAITING"
	CategoryRejected Category = "REJECTED"
)

// ParseCategory converts a state query parameter to a Category,
// case-insensitively. Unrecognized or empty values fall back to ALL: an
// unknown filter means no filter, not an error.
func ParseCategory(s string) Category {
	switch c := Category(strings.ToUpper(strings.TrimSpace(s))); c {
	case CategoryCurrent, CategoryPast, CategoryFuture, CategoryWaiting, CategoryRejected, CategoryAll:
		return c
	default:
		return CategoryAll
	}
}
