package usecase_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/microblog/internal/models"
	pkgCache "github.com/akarpov/microblog/internal/pkg/cache"
	pkgErrors "github.com/akarpov/microblog/internal/pkg/errors"
	"github.com/akarpov/microblog/internal/post/usecase"
	"github.com/akarpov/microblog/internal/post/usecase/mocks"
)

const freshness = 15 * time.Second

type fakeCache struct {
	entries map[string]string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	value, ok := f.entries[key]
	if !ok {
		return "", pkgCache.ErrMiss
	}
	return value, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string) error {
	f.entries[key] = value
	return nil
}

func newUseCase(t *testing.T) (*usecase.UseCase, *mocks.MockRepository, *fakeCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRepository(ctrl)
	cache := newFakeCache()

	return usecase.New(repo, cache, freshness, slog.New(slog.NewTextHandler(io.Discard, nil))), repo, cache
}

func testPosts() []models.Post {
	createdAt := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	author := &models.User{
		ID:        1,
		UUID:      "b8a9f2de-0000-0000-0000-000000000001",
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}

	return []models.Post{
		{ID: 2, UUID: "c0ffee00-0000-0000-0000-000000000002", Title: "second", Body: "newest", UserID: 1, CreatedAt: createdAt.Add(time.Hour), User: author},
		{ID: 1, UUID: "c0ffee00-0000-0000-0000-000000000001", Title: "first", Body: "oldest", UserID: 1, CreatedAt: createdAt, User: author},
	}
}

func TestCreate(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	ctx := context.Background()

	params := usecase.CreateParams{Title: "hi", Body: "text", UserUUID: "b8a9f2de-0000-0000-0000-000000000001"}
	created := testPosts()[1]

	repo.EXPECT().Create(ctx, params).Return(created, nil)

	post, err := uc.Create(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, created, post)
}

func TestCreate_UnknownUser(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	ctx := context.Background()

	params := usecase.CreateParams{Title: "hi", Body: "text", UserUUID: "missing"}
	repo.EXPECT().Create(ctx, params).Return(models.Post{}, pkgErrors.ErrUserNotFound)

	_, err := uc.Create(ctx, params)
	assert.Equal(t, pkgErrors.KindNotFound, pkgErrors.KindOf(err))
}

func TestList_MissThenHit(t *testing.T) {
	uc, repo, cache := newUseCase(t)
	ctx := context.Background()

	posts := testPosts()
	repo.EXPECT().ListWithUsers(ctx).Return(posts, nil).Times(1)

	// First read goes to the store, newest post first with its author
	// embedded, and populates the cache.
	got, fromCache, err := uc.List(ctx)
	require.NoError(t, err)
	assert.False(t, fromCache)
	require.Len(t, got, 2)
	assert.Equal(t, "second", got[0].Title)
	require.NotNil(t, got[0].User)
	assert.Equal(t, "alice@example.com", got[0].User.Email)

	_, err = strconv.ParseInt(cache.entries["posts:expiry"], 10, 64)
	require.NoError(t, err)

	// Second read inside the window is served from cache.
	again, fromCache, err := uc.List(ctx)
	require.NoError(t, err)
	assert.True(t, fromCache)
	assert.Equal(t, got, again)
}

func TestList_StaleCacheRepopulates(t *testing.T) {
	uc, repo, cache := newUseCase(t)
	ctx := context.Background()

	posts := testPosts()
	blob, err := json.Marshal(posts[:1])
	require.NoError(t, err)
	cache.entries["posts:data"] = string(blob)
	cache.entries["posts:expiry"] = strconv.FormatInt(time.Now().Add(-16*time.Second).UnixMilli(), 10)

	repo.EXPECT().ListWithUsers(ctx).Return(posts, nil).Times(1)

	got, fromCache, err := uc.List(ctx)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, posts, got)

	var cached []models.Post
	require.NoError(t, json.Unmarshal([]byte(cache.entries["posts:data"]), &cached))
	assert.Equal(t, posts, cached)
}

func TestList_DependencyFailure(t *testing.T) {
	uc, repo, _ := newUseCase(t)
	ctx := context.Background()

	repo.EXPECT().ListWithUsers(ctx).Return(nil, pkgErrors.ErrDb)

	_, _, err := uc.List(ctx)
	assert.Equal(t, pkgErrors.KindDependency, pkgErrors.KindOf(err))
}
