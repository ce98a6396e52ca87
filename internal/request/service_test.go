package request_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/annetv/item-sharing-backend/internal/item"
	"github.com/annetv/item-sharing-backend/internal/request"
	"github.com/annetv/item-sharing-backend/internal/user"
)

type fakeRequestRepo struct {
	seq      int
	requests []*request.Request
}

func (r *fakeRequestRepo) Create(ctx context.Context, req *request.Request) error {
	r.seq++
	req.ID = fmt.Sprintf("request-%d", r.seq)
	req.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	clone := *req
	r.requests = append(r.requests, &clone)
	return nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (*request.Request, error) {
	for _, req := range r.requests {
		if req.ID == id {
			clone := *req
			return &clone, nil
		}
	}
	return nil, request.ErrNotFound
}

func (r *fakeRequestRepo) ListByRequestor(ctx context.Context, requestorID string) ([]*request.Request, error) {
	return r.list(func(req *request.Request) bool { return req.RequestorID == requestorID }), nil
}

func (r *fakeRequestRepo) ListOthers(ctx context.Context, excludeUserID string) ([]*request.Request, error) {
	return r.list(func(req *request.Request) bool { return req.RequestorID != excludeUserID }), nil
}

func (r *fakeRequestRepo) list(keep func(*request.Request) bool) []*request.Request {
	var out []*request.Request
	for _, req := range r.requests {
		if keep(req) {
			clone := *req
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

type fakeItemLister struct {
	byRequest map[string][]*item.Item
}

func (f *fakeItemLister) ListByRequest(ctx context.Context, requestID string) ([]*item.Item, error) {
	return f.byRequest[requestID], nil
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

type requestFixture struct {
	repo    *fakeRequestRepo
	items   *fakeItemLister
	service request.Service
	alice   *user.User
	bob     *user.User
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()

	alice := &user.User{ID: "user-a", Name: "Alice", Email: "alice@example.com"}
	bob := &user.User{ID: "user-b", Name: "Bob", Email: "bob@example.com"}

	repo := &fakeRequestRepo{}
	items := &fakeItemLister{byRequest: make(map[string][]*item.Item)}
	svc := request.NewService(repo, items, &fakeUserDirectory{users: map[string]*user.User{
		alice.ID: alice,
		bob.ID:   bob,
	}})

	return &requestFixture{repo: repo, items: items, service: svc, alice: alice, bob: bob}
}

func TestRequestCreate(t *testing.T) {
	ctx := context.Background()
	f := newRequestFixture(t)

	t.Run("success", func(t *testing.T) {
		req, err := f.service.Create(ctx, f.alice.ID, "  Need a ladder  ")
		require.NoError(t, err)
		assert.NotEmpty(t, req.ID)
		assert.Equal(t, "Need a ladder", req.Description)
		assert.Equal(t, f.alice.ID, req.RequestorID)
		assert.Equal(t, f.alice.Name, req.RequestorName)
	})

	t.Run("unknown requestor", func(t *testing.T) {
		_, err := f.service.Create(ctx, "ghost", "Need a ladder")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})

	t.Run("blank description", func(t *testing.T) {
		_, err := f.service.Create(ctx, f.alice.ID, "   ")
		assert.ErrorIs(t, err, request.ErrDescriptionRequired)
	})
}

func TestRequestLists(t *testing.T) {
	ctx := context.Background()
	f := newRequestFixture(t)

	first, err := f.service.Create(ctx, f.alice.ID, "Need a ladder")
	require.NoError(t, err)
	second, err := f.service.Create(ctx, f.alice.ID, "Need a tent")
	require.NoError(t, err)
	theirs, err := f.service.Create(ctx, f.bob.ID, "Need a kayak")
	require.NoError(t, err)

	f.items.byRequest[first.ID] = []*item.Item{{ID: "item-1", Name: "Ladder", RequestID: &first.ID}}

	t.Run("own requests newest first with items", func(t *testing.T) {
		got, err := f.service.ListOwn(ctx, f.alice.ID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, second.ID, got[0].ID)
		assert.Equal(t, first.ID, got[1].ID)
		assert.Empty(t, got[0].Items)
		require.Len(t, got[1].Items, 1)
		assert.Equal(t, "Ladder", got[1].Items[0].Name)
	})

	t.Run("others excludes own requests", func(t *testing.T) {
		got, err := f.service.ListOthers(ctx, f.alice.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, theirs.ID, got[0].ID)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.service.ListOwn(ctx, "ghost")
		assert.ErrorIs(t, err, user.ErrNotFound)

		_, err = f.service.ListOthers(ctx, "ghost")
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}

func TestRequestGetByID(t *testing.T) {
	ctx := context.Background()
	f := newRequestFixture(t)

	created, err := f.service.Create(ctx, f.alice.ID, "Need a ladder")
	require.NoError(t, err)
	f.items.byRequest[created.ID] = []*item.Item{{ID: "item-1", Name: "Ladder", RequestID: &created.ID}}

	t.Run("any user can view with items", func(t *testing.T) {
		got, err := f.service.GetByID(ctx, f.bob.ID, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
		require.Len(t, got.Items, 1)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := f.service.GetByID(ctx, f.alice.ID, "missing")
		assert.ErrorIs(t, err, request.ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.service.GetByID(ctx, "ghost", created.ID)
		assert.ErrorIs(t, err, user.ErrNotFound)
	})
}
