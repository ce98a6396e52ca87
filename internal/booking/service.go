package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/annetv/item-sharing-backend/internal/item"
	"github.com/annetv/item-sharing-backend/internal/user"
)

// CreateRequest carries the fields for requesting a new booking.
type CreateRequest struct {
	ItemID string
	Start  time.Time
	End    time.Time
}

// ItemLookup is the slice of the item module this service needs.
type ItemLookup interface {
	Lookup(ctx context.Context, itemID string) (*item.Item, error)
}

// UserDirectory is the slice of the user module this service needs.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// Service is the booking orchestrator: it validates inputs, runs the
// availability check on create, persists, and classifies on read.
type Service interface {
	Create(ctx context.Context, bookerID string, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, requesterID, bookingID string) (*Booking, error)
	SetApproval(ctx context.Context, ownerID, bookingID string, approved bool) (*Booking, error)
	ListForBooker(ctx context.Context, bookerID string, category Category) ([]*Booking, error)
	ListForOwner(ctx context.Context, ownerID string, category Category) ([]*Booking, error)
}

type service struct {
	repo  Repository
	items ItemLookup
	users UserDirectory
	locks *keyedMutex
	log   *zap.Logger
	now   func() time.Time
}

// NewService creates a new booking Service.
func NewService(repo Repository, items ItemLookup, users UserDirectory, log *zap.Logger) Service {
	return &service{
		repo:  repo,
		items: items,
		users: users,
		locks: newKeyedMutex(),
		log:   log,
		now:   time.Now,
	}
}

func (s *service) Create(ctx context.Context, bookerID string, req CreateRequest) (*Booking, error) {
	booker, err := s.users.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	it, err := s.items.Lookup(ctx, req.ItemID)
	if err != nil {
		return nil, err
	}

	if err := CheckWindow(it, bookerID, req.Start, req.End, s.now()); err != nil {
		return nil, err
	}

	// The overlap scan and the insert must act as one unit with respect to
	// concurrent creates on the same item, otherwise two conflicting bookings
	// can both pass the check.
	unlock := s.locks.Lock(it.ID)
	defer unlock()

	conflicting, err := s.repo.FindOverlapping(ctx, it.ID, req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if len(conflicting) > 0 {
		return nil, ErrOverlap
	}

	b := &Booking{
		ItemID:     it.ID,
		ItemName:   it.Name,
		OwnerID:    it.OwnerID,
		BookerID:   booker.ID,
		BookerName: booker.Name,
		Start:      req.Start,
		End:        req.End,
		Status:     StatusWaiting,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info("booking created",
		zap.String("booking_id", b.ID),
		zap.String("item_id", b.ItemID),
		zap.String("booker_id", b.BookerID),
	)

	return b, nil
}

func (s *service) GetByID(ctx context.Context, requesterID, bookingID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if requesterID != b.BookerID && requesterID != b.OwnerID {
		return nil, ErrNotParticipant
	}
	return b, nil
}

func (s *service) SetApproval(ctx context.Context, ownerID, bookingID string, approved bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if ownerID != b.OwnerID {
		return nil, ErrNotItemOwner
	}

	status := decisionStatus(approved)

	// The owner's decision overwrites unconditionally, including bookings
	// already decided. Callers must not rely on idempotence.
	if b.Status != StatusWaiting {
		s.log.Warn("overwriting decided booking status",
			zap.String("booking_id", b.ID),
			zap.String("from", b.Status.String()),
			zap.String("to", status.String()),
		)
	}

	if err := s.repo.UpdateStatus(ctx, b.ID, status); err != nil {
		return nil, err
	}
	b.Status = status

	s.log.Info("booking decided",
		zap.String("booking_id", b.ID),
		zap.String("status", status.String()),
	)

	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, bookerID string, category Category) ([]*Booking, error) {
	return s.listFor(ctx, bookerID, category, s.repo.ListForBooker)
}

func (s *service) ListForOwner(ctx context.Context, ownerID string, category Category) ([]*Booking, error) {
	return s.listFor(ctx, ownerID, category, s.repo.ListForOwner)
}

// listFor runs the classifier over the candidate set produced by the
// role-specific fetch. Both views share the category predicates; only the
// candidate selection differs.
func (s *service) listFor(
	ctx context.Context,
	subjectID string,
	category Category,
	fetch func(ctx context.Context, subjectID string) ([]*Booking, error),
) ([]*Booking, error) {
	exists, err := s.users.Exists(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, user.ErrNotFound
	}

	candidates, err := fetch(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	return Classify(candidates, s.now(), category), nil
}
