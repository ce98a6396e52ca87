package booking

import (
	"sort"
	"time"
)

// Classify buckets bookings into the given category relative to now and
// returns them ordered by start descending. CURRENT uses the closed interval
// [start, end]: a booking ending exactly now is still current. The input
// slice is not modified.
func Classify(bookings []*Booking, now time.Time, category Category) []*Booking {
	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if inCategory(b, now, category) {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.After(out[j].Start)
	})
	return out
}

func inCategory(b *Booking, now time.Time, category Category) bool {
	switch category {
	case CategoryCurrent:
		return !b.Start.After(now) && !b.End.Before(now)
	case CategoryPast:
		return b.End.Before(now)
	case CategoryFuture:
		return b.Start.After(now)
	case CategoryWaiting:
		return b.Status == StatusWaiting
	case CategoryRejected:
		return b.Status == StatusRejected
	default:
		// ALL and anything unrecognized: no filter.
		return true
	}
}
