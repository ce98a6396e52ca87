package request

import (
	"context"
	"strings"

	"github.com/annetv/item-sharing-backend/internal/item"
	"github.com/annetv/item-sharing-backend/internal/user"
)

// ItemLister is the slice of the item module this service needs: finding the
// items published in response to a request.
type ItemLister interface {
	ListByRequest(ctx context.Context, requestID string) ([]*item.Item, error)
}

// UserDirectory is the slice of the user module this service needs.
type UserDirectory interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// Service defines business logic related to item requests.
type Service interface {
	Create(ctx context.Context, requestorID, description string) (*Request, error)
	// ListOwn returns the user's requests, newest first, each with the items
	// published in response.
	ListOwn(ctx context.Context, requestorID string) ([]*WithItems, error)
	// ListOthers returns requests made by other users, newest first.
	ListOthers(ctx context.Context, userID string) ([]*Request, error)
	GetByID(ctx context.Context, userID, requestID string) (*WithItems, error)
}

type service struct {
	repo  Repository
	items ItemLister
	users UserDirectory
}

// NewService creates a new request Service.
func NewService(repo Repository, items ItemLister, users UserDirectory) Service {
	return &service{
		repo:  repo,
		items: items,
		users: users,
	}
}

func (s *service) Create(ctx context.Context, requestorID, description string) (*Request, error) {
	requestor, err := s.users.GetByID(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	clean := strings.TrimSpace(description)
	if clean == "" {
		return nil, ErrDescriptionRequired
	}

	req := &Request{
		Description:   clean,
		RequestorID:   requestor.ID,
		RequestorName: requestor.Name,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) ListOwn(ctx context.Context, requestorID string) ([]*WithItems, error) {
	if err := s.checkUser(ctx, requestorID); err != nil {
		return nil, err
	}

	requests, err := s.repo.ListByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}

	result := make([]*WithItems, 0, len(requests))
	for _, req := range requests {
		items, err := s.items.ListByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, &WithItems{Request: *req, Items: items})
	}
	return result, nil
}

func (s *service) ListOthers(ctx context.Context, userID string) ([]*Request, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListOthers(ctx, userID)
}

func (s *service) GetByID(ctx context.Context, userID, requestID string) (*WithItems, error) {
	if err := s.checkUser(ctx, userID); err != nil {
		return nil, err
	}

	req, err := s.repo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &WithItems{Request: *req, Items: items}, nil
}

func (s *service) checkUser(ctx context.Context, userID string) error {
	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return user.ErrNotFound
	}
	return nil
}
