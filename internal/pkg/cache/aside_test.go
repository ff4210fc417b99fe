package cache_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strconv"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akarpov/microblog/internal/pkg/cache"
)

type item struct {
	Name string `json:"name"`
}

type fakeCache struct {
	entries map[string]string
	failGet bool
	failSet bool
	sets    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	if f.failGet {
		return "", errors.New("cache down")
	}
	value, ok := f.entries[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return value, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string) error {
	f.sets++
	if f.failSet {
		return errors.New("cache down")
	}
	f.entries[key] = value
	return nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func freshMarker() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

func staleMarker(age time.Duration) string {
	return strconv.FormatInt(time.Now().Add(-age).UnixMilli(), 10)
}

func TestListPolicy_Fresh_EmptyCache(t *testing.T) {
	policy := cache.NewListPolicy[item](newFakeCache(), "items", 15*time.Second, discard())

	_, ok := policy.Fresh(context.Background())
	assert.False(t, ok)
}

func TestListPolicy_Fresh_Hit(t *testing.T) {
	fake := newFakeCache()
	fake.entries["items:expiry"] = freshMarker()
	fake.entries["items:data"] = `[{"name":"a"},{"name":"b"}]`

	policy := cache.NewListPolicy[item](fake, "items", 15*time.Second, discard())

	items, ok := policy.Fresh(context.Background())
	require.True(t, ok)
	assert.Equal(t, []item{{Name: "a"}, {Name: "b"}}, items)
}

func TestListPolicy_Fresh_StaleMarker(t *testing.T) {
	fake := newFakeCache()
	fake.entries["items:expiry"] = staleMarker(16 * time.Second)
	fake.entries["items:data"] = `[{"name":"a"}]`

	policy := cache.NewListPolicy[item](fake, "items", 15*time.Second, discard())

	_, ok := policy.Fresh(context.Background())
	assert.False(t, ok)
}

func TestListPolicy_Fresh_CorruptMarker(t *testing.T) {
	fake := newFakeCache()
	fake.entries["items:expiry"] = "garbage"
	fake.entries["items:data"] = `[{"name":"a"}]`

	policy := cache.NewListPolicy[item](fake, "items", 15*time.Second, discard())

	_, ok := policy.Fresh(context.Background())
	assert.False(t, ok)
}

func TestListPolicy_Fresh_MarkerWithoutData(t *testing.T) {
	fake := newFakeCache()
	fake.entries["items:expiry"] = freshMarker()

	policy := cache.NewListPolicy[item](fake, "items", 15*time.Second, discard())

	_, ok := policy.Fresh(context.Background())
	assert.False(t, ok)
}

func TestListPolicy_Fresh_CorruptData(t *testing.T) {
	fake := newFakeCache()
	fake.entries["items:expiry"] = freshMarker()
	fake.entries["items:data"] = "{not json"

	policy := cache.NewListPolicy[item](fake, "items", 15*time.Second, discard())

	_, ok := policy.Fresh(context.Background())
	assert.False(t, ok)
}

func TestListPolicy_Fresh_CacheFailure(t *testing.T) {
	fake := newFakeCache()
	fake.failGet = true

	policy := cache.NewListPolicy[item](fake, "items", 15*time.Second, discard())

	_, ok := policy.Fresh(context.Background())
	assert.False(t, ok)
}

func TestListPolicy_Store_ThenFresh(t *testing.T) {
	fake := newFakeCache()
	policy := cache.NewListPolicy[item](fake, "items", 15*time.Second, discard())

	before := time.Now().UnixMilli()
	policy.Store(context.Background(), []item{{Name: "a"}})

	marker, err := strconv.ParseInt(fake.entries["items:expiry"], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, marker, before)

	var stored []item
	require.NoError(t, json.Unmarshal([]byte(fake.entries["items:data"]), &stored))
	assert.Equal(t, []item{{Name: "a"}}, stored)

	items, ok := policy.Fresh(context.Background())
	require.True(t, ok)
	assert.Equal(t, []item{{Name: "a"}}, items)
}

func TestListPolicy_Store_SetFailureIsSwallowed(t *testing.T) {
	fake := newFakeCache()
	fake.failSet = true

	policy := cache.NewListPolicy[item](fake, "items", 15*time.Second, discard())
	policy.Store(context.Background(), []item{{Name: "a"}})

	// The failed data write must short-circuit the marker write.
	assert.Equal(t, 1, fake.sets)
	assert.Empty(t, fake.entries)
}
