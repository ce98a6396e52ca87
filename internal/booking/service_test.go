package booking_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/annetv/item-sharing-backend/internal/booking"
	"github.com/annetv/item-sharing-backend/internal/item"
	"github.com/annetv/item-sharing-backend/internal/user"
)

type fakeBookingRepo struct {
	mu       sync.Mutex
	seq      int
	bookings []*booking.Booking
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	b.ID = fmt.Sprintf("booking-%d", r.seq)
	b.CreatedAt = time.Now()
	clone := *b
	r.bookings = append(r.bookings, &clone)
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, booking.ErrNotFound
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id string, status booking.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			b.Status = status
			return nil
		}
	}
	return booking.ErrNotFound
}

func (r *fakeBookingRepo) FindOverlapping(ctx context.Context, itemID string, start, end time.Time) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.ItemID == itemID && b.Blocks() && booking.Overlaps(b.Start, b.End, start, end) {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListForBooker(ctx context.Context, bookerID string) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.BookerID == bookerID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListForOwner(ctx context.Context, ownerID string) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.OwnerID == ownerID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListForItem(ctx context.Context, itemID string) ([]*booking.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*booking.Booking
	for _, b := range r.bookings {
		if b.ItemID == itemID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) LastForItem(ctx context.Context, itemID string, now time.Time) (*booking.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) NextForItem(ctx context.Context, itemID string, now time.Time) (*booking.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) HasFinished(ctx context.Context, itemID, bookerID string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ItemID == itemID && b.BookerID == bookerID && b.Status == booking.StatusApproved && b.End.Before(now) {
			return true, nil
		}
	}
	return false, nil
}

type fakeItemLookup struct {
	items map[string]*item.Item
}

func (f *fakeItemLookup) Lookup(ctx context.Context, itemID string) (*item.Item, error) {
	it, ok := f.items[itemID]
	if !ok {
		return nil, item.ErrNotFound
	}
	return it, nil
}

type fakeUserDirectory struct {
	users map[string]*user.User
}

func (f *fakeUserDirectory) GetByID(ctx context.Context, id string) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserDirectory) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

type bookingFixture struct {
	repo    *fakeBookingRepo
	service booking.Service
	owner   *user.User
	booker  *user.User
	item    *item.Item
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	owner := &user.User{ID: "owner-1", Name: "Olga", Email: "olga@example.com"}
	booker := &user.User{ID: "booker-1", Name: "Boris", Email: "boris@example.com"}
	it := &item.Item{ID: "item-1", OwnerID: owner.ID, Name: "Drill", Available: true}

	repo := &fakeBookingRepo{}
	svc := booking.NewService(
		repo,
		&fakeItemLookup{items: map[string]*item.Item{it.ID: it}},
		&fakeUserDirectory{users: map[string]*user.User{owner.ID: owner, booker.ID: booker}},
		zap.NewNop(),
	)

	return &bookingFixture{repo: repo, service: svc, owner: owner, booker: booker, item: it}
}

func futureWindow(fromNow, length time.Duration) (time.Time, time.Time) {
	start := time.Now().Add(fromNow)
	return start, start.Add(length)
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	start, end := futureWindow(24*time.Hour, 2*time.Hour)
	b, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: f.item.ID, Start: start, End: end})
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, booking.StatusWaiting, b.Status)
	assert.Equal(t, f.item.ID, b.ItemID)
	assert.Equal(t, f.item.Name, b.ItemName)
	assert.Equal(t, f.owner.ID, b.OwnerID)
	assert.Equal(t, f.booker.ID, b.BookerID)
	assert.Equal(t, f.booker.Name, b.BookerName)
}

func TestServiceCreateRejections(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	start, end := futureWindow(24*time.Hour, 2*time.Hour)

	t.Run("unknown booker", func(t *testing.T) {
		_, err := f.service.Create(ctx, "ghost", booking.CreateRequest{ItemID: f.item.ID, Start: start, End: end})
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: "missing", Start: start, End: end})
		assert.ErrorIs(t, err, item.ErrNotFound)
	})

	t.Run("owner books own item", func(t *testing.T) {
		_, err := f.service.Create(ctx, f.owner.ID, booking.CreateRequest{ItemID: f.item.ID, Start: start, End: end})
		assert.ErrorIs(t, err, booking.ErrOwnItemBooking)
	})

	t.Run("end not after start", func(t *testing.T) {
		_, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: f.item.ID, Start: start, End: start})
		assert.ErrorIs(t, err, booking.ErrInvalidTimeRange)
	})

	t.Run("start in the past", func(t *testing.T) {
		_, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{
			ItemID: f.item.ID,
			Start:  time.Now().Add(-time.Hour),
			End:    time.Now().Add(time.Hour),
		})
		assert.ErrorIs(t, err, booking.ErrTimeInPast)
	})
}

func TestServiceCreateOverlap(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	start, end := futureWindow(24*time.Hour, 4*time.Hour)
	_, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: f.item.ID, Start: start, End: end})
	require.NoError(t, err)

	t.Run("intersecting window rejected", func(t *testing.T) {
		_, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{
			ItemID: f.item.ID,
			Start:  start.Add(time.Hour),
			End:    end.Add(time.Hour),
		})
		assert.ErrorIs(t, err, booking.ErrOverlap)
	})

	t.Run("back-to-back window accepted", func(t *testing.T) {
		_, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{
			ItemID: f.item.ID,
			Start:  end,
			End:    end.Add(2 * time.Hour),
		})
		assert.NoError(t, err)
	})
}

func TestServiceCreateIgnoresRejectedBookings(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	start, end := futureWindow(24*time.Hour, 2*time.Hour)
	first, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: f.item.ID, Start: start, End: end})
	require.NoError(t, err)

	_, err = f.service.SetApproval(ctx, f.owner.ID, first.ID, false)
	require.NoError(t, err)

	// A rejected booking holds no claim on the window.
	_, err = f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: f.item.ID, Start: start, End: end})
	assert.NoError(t, err)
}

func TestServiceCreateConcurrentConflicts(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	start, end := futureWindow(24*time.Hour, 2*time.Hour)

	const attempts = 20
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := 0; i < attempts; i++ {
		go func() {
			defer wg.Done()
			_, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: f.item.ID, Start: start, End: end})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	created, overlapped := 0, 0
	for err := range results {
		switch {
		case err == nil:
			created++
		default:
			require.ErrorIs(t, err, booking.ErrOverlap)
			overlapped++
		}
	}

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, overlapped)
}

func TestServiceGetByID(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	start, end := futureWindow(24*time.Hour, 2*time.Hour)
	b, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: f.item.ID, Start: start, End: end})
	require.NoError(t, err)

	t.Run("booker can view", func(t *testing.T) {
		got, err := f.service.GetByID(ctx, f.booker.ID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("owner can view", func(t *testing.T) {
		got, err := f.service.GetByID(ctx, f.owner.ID, b.ID)
		require.NoError(t, err)
		assert.Equal(t, b.ID, got.ID)
	})

	t.Run("stranger cannot view", func(t *testing.T) {
		_, err := f.service.GetByID(ctx, "stranger", b.ID)
		assert.ErrorIs(t, err, booking.ErrNotParticipant)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := f.service.GetByID(ctx, f.booker.ID, "missing")
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})
}

func TestServiceSetApproval(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	start, end := futureWindow(24*time.Hour, 2*time.Hour)
	b, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: f.item.ID, Start: start, End: end})
	require.NoError(t, err)

	t.Run("only the owner decides", func(t *testing.T) {
		_, err := f.service.SetApproval(ctx, f.booker.ID, b.ID, true)
		assert.ErrorIs(t, err, booking.ErrNotItemOwner)
	})

	t.Run("approve", func(t *testing.T) {
		got, err := f.service.SetApproval(ctx, f.owner.ID, b.ID, true)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusApproved, got.Status)
	})

	t.Run("decision overwrites a decided booking", func(t *testing.T) {
		got, err := f.service.SetApproval(ctx, f.owner.ID, b.ID, false)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, got.Status)

		stored, err := f.repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusRejected, stored.Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := f.service.SetApproval(ctx, f.owner.ID, "missing", true)
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})
}

func TestServiceLists(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	earlyStart, earlyEnd := futureWindow(24*time.Hour, 2*time.Hour)
	lateStart, lateEnd := futureWindow(72*time.Hour, 2*time.Hour)

	early, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: f.item.ID, Start: earlyStart, End: earlyEnd})
	require.NoError(t, err)
	late, err := f.service.Create(ctx, f.booker.ID, booking.CreateRequest{ItemID: f.item.ID, Start: lateStart, End: lateEnd})
	require.NoError(t, err)

	t.Run("booker view ordered newest first", func(t *testing.T) {
		got, err := f.service.ListForBooker(ctx, f.booker.ID, booking.CategoryAll)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, late.ID, got[0].ID)
		assert.Equal(t, early.ID, got[1].ID)
	})

	t.Run("owner sees bookings of their items", func(t *testing.T) {
		got, err := f.service.ListForOwner(ctx, f.owner.ID, booking.CategoryAll)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("waiting filter tracks decisions", func(t *testing.T) {
		_, err := f.service.SetApproval(ctx, f.owner.ID, early.ID, true)
		require.NoError(t, err)

		got, err := f.service.ListForBooker(ctx, f.booker.ID, booking.CategoryWaiting)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, late.ID, got[0].ID)
	})

	t.Run("future filter", func(t *testing.T) {
		got, err := f.service.ListForBooker(ctx, f.booker.ID, booking.CategoryFuture)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := f.service.ListForBooker(ctx, "ghost", booking.CategoryAll)
		assert.ErrorIs(t, err, user.ErrNotFound)

		_, err = f.service.ListForOwner(ctx, "ghost", booking.CategoryAll)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("booker with no bookings", func(t *testing.T) {
		got, err := f.service.ListForOwner(ctx, f.booker.ID, booking.CategoryAll)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
