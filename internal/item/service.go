package item

import (
	"context"
	"strings"
	"time"

	"github.com/annetv/item-sharing-backend/internal/user"
)

// CreateRequest carries the fields for publishing a new item.
type CreateRequest struct {
	Name        string
	Description string
	Available   bool
	RequestID   *string
}

// UpdateRequest carries a partial item update; nil fields are left unchanged.
type UpdateRequest struct {
	Name        *string
	Description *string
	Available   *bool
}

// UserDirectory is the slice of the user module this service needs.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// Service defines business logic related to items.
type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error)
	Update(ctx context.Context, ownerID, itemID string, req UpdateRequest) (*Item, error)
	// GetByID returns the item with its comments. Last/next booking windows are
	// filled only when the requester is the item's owner.
	GetByID(ctx context.Context, requesterID, itemID string) (*Details, error)
	// Lookup is the bare item fetch other modules use.
	Lookup(ctx context.Context, itemID string) (*Item, error)
	ListForOwner(ctx context.Context, ownerID string) ([]*WithBookings, error)
	Search(ctx context.Context, text string) ([]*Item, error)
	AddComment(ctx context.Context, authorID, itemID, text string) (*Comment, error)
}

type service struct {
	repo     Repository
	comments CommentRepository
	users    UserDirectory
	bookings BookingReader
	now      func() time.Time
}

// NewService creates a new item Service.
func NewService(repo Repository, comments CommentRepository, users UserDirectory, bookings BookingReader) Service {
	return &service{
		repo:     repo,
		comments: comments,
		users:    users,
		bookings: bookings,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Item, error) {
	exists, err := s.users.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, user.ErrNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}

	i := &Item{
		OwnerID:     ownerID,
		Name:        name,
		Description: description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	}
	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) Update(ctx context.Context, ownerID, itemID string, req UpdateRequest) (*Item, error) {
	i, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if i.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		i.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, ErrDescriptionRequired
		}
		i.Description = description
	}
	if req.Available != nil {
		i.Available = *req.Available
	}

	if err := s.repo.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *service) GetByID(ctx context.Context, requesterID, itemID string) (*Details, error) {
	i, err := s.repo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	comments, err := s.comments.ListByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details := &Details{
		Item:     *i,
		Comments: comments,
	}

	// Neighbouring booking windows are visible to the owner only.
	if i.OwnerID == requesterID {
		now := s.now()
		details.LastBooking, err = s.bookings.LastForItem(ctx, itemID, now)
		if err != nil {
			return nil, err
		}
		details.NextBooking, err = s.bookings.NextForItem(ctx, itemID, now)
		if err != nil {
			return nil, err
		}
	}

	return details, nil
}

func (s *service) Lookup(ctx context.Context, itemID string) (*Item, error) {
	return s.repo.GetByID(ctx, itemID)
}

func (s *service) ListForOwner(ctx context.Context, ownerID string) ([]*WithBookings, error) {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := make([]*WithBookings, 0, len(items))
	for _, i := range items {
		windows, err := s.bookings.WindowsForItem(ctx, i.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &WithBookings{Item: *i, Bookings: windows})
	}
	return result, nil
}

func (s *service) Search(ctx context.Context, text string) ([]*Item, error) {
	// Blank search text matches nothing.
	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text)
}

func (s *service) AddComment(ctx context.Context, authorID, itemID, text string) (*Comment, error) {
	if _, err := s.repo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	cleanText := strings.TrimSpace(text)
	if cleanText == "" {
		return nil, ErrCommentTextRequired
	}

	// Only users who actually finished a booking of the item may comment.
	finished, err := s.bookings.HasFinishedBooking(ctx, itemID, authorID, s.now())
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, ErrCommentWithoutBooking
	}

	c := &Comment{
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Text:       cleanText,
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
