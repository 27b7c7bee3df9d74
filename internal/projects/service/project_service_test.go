package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enesocakci/portfolio-backend/internal/projects/cache"
	"github.com/enesocakci/portfolio-backend/internal/projects/domain"
)

// fakeStore is an in-memory Store with the same like semantics as the
// Firestore repository.
type fakeStore struct {
	projects  map[string]domain.Project
	likes     map[string]bool
	nextID    int
	listCalls int
	failList  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects: make(map[string]domain.Project),
		likes:    make(map[string]bool),
	}
}

func (f *fakeStore) Create(_ context.Context, title, description, imageURL string) (string, error) {
	f.nextID++
	id := "p" + strconv.Itoa(f.nextID)
	f.projects[id] = domain.Project{ID: id, Title: title, Description: description, ImageURL: imageURL}
	return id, nil
}

func (f *fakeStore) List(_ context.Context) ([]domain.Project, error) {
	f.listCalls++
	if f.failList != nil {
		return nil, f.failList
	}
	out := make([]domain.Project, 0, len(f.projects))
	for _, p := range f.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeStore) RecordLike(_ context.Context, projectID, identifier string) error {
	key := domain.LikeKey(projectID, identifier)
	if f.likes[key] {
		return domain.ErrAlreadyLiked
	}
	p, ok := f.projects[projectID]
	if !ok {
		return domain.ErrProjectNotFound
	}
	p.Likes++
	f.projects[projectID] = p
	f.likes[key] = true
	return nil
}

func newTestCache(t *testing.T) *cache.ListingCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.New(client, time.Minute)
}

func TestLike_Deduplicates(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewProjectService(store, nil)

	id, err := svc.Create(ctx, "Portfolio Site", "personal site", "https://img.example/p.png")
	require.NoError(t, err)

	require.NoError(t, svc.Like(ctx, id, "u1"))
	assert.ErrorIs(t, svc.Like(ctx, id, "u1"), domain.ErrAlreadyLiked)

	// A different identifier still counts.
	require.NoError(t, svc.Like(ctx, id, "u2"))
	assert.Equal(t, int64(2), store.projects[id].Likes)
}

func TestLike_UnknownProject(t *testing.T) {
	svc := NewProjectService(newFakeStore(), nil)
	err := svc.Like(context.Background(), "missing", "u1")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestList_UsesCache(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewProjectService(store, newTestCache(t))

	_, err := svc.Create(ctx, "Portfolio Site", "d", "u")
	require.NoError(t, err)

	first, err := svc.List(ctx)
	require.NoError(t, err)

	second, err := svc.List(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.listCalls, "second listing should be served from cache")
}

func TestLike_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	svc := NewProjectService(store, newTestCache(t))

	id, err := svc.Create(ctx, "Portfolio Site", "d", "u")
	require.NoError(t, err)

	_, err = svc.List(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Like(ctx, id, "u1"))

	projects, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, int64(1), projects[0].Likes, "listing after a like must reflect the new counter")
}

func TestList_StoreError(t *testing.T) {
	store := newFakeStore()
	store.failList = errors.New("store down")
	svc := NewProjectService(store, nil)

	_, err := svc.List(context.Background())
	assert.Error(t, err)
}
