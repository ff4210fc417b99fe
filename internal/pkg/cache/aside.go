package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"
)

// ListPolicy is the cache-aside protocol for a list resource: a serialized
// data entry plus an expiry marker holding the write time in milliseconds,
// both under keys derived from the resource name. A marker older than the
// freshness window, an unparseable marker and any cache failure all fall
// through to the source of truth.
type ListPolicy[T any] struct {
	cache     Cache
	resource  string
	freshness time.Duration
	logger    *slog.Logger
}

func NewListPolicy[T any](cache Cache, resource string, freshness time.Duration, logger *slog.Logger) *ListPolicy[T] {
	return &ListPolicy[T]{
		cache:     cache,
		resource:  resource,
		freshness: freshness,
		logger:    logger,
	}
}

// Fresh returns the cached dataset if the expiry marker is within the
// freshness window and the data entry deserializes.
func (p *ListPolicy[T]) Fresh(ctx context.Context) ([]T, bool) {
	marker, err := p.cache.Get(ctx, ListExpiryKey(p.resource))
	if err != nil {
		return nil, false
	}

	// A corrupt marker is a miss, never a failure.
	writtenAt, err := strconv.ParseInt(marker, 10, 64)
	if err != nil {
		return nil, false
	}
	if time.Now().UnixMilli()-writtenAt > p.freshness.Milliseconds() {
		return nil, false
	}

	blob, err := p.cache.Get(ctx, ListDataKey(p.resource))
	if err != nil {
		return nil, false
	}

	var items []T
	if err = json.Unmarshal([]byte(blob), &items); err != nil {
		return nil, false
	}

	return items, true
}

// Store writes the dataset and then a fresh expiry marker. Best effort: the
// caller already holds the data, a failed write only costs the next reader
// a trip to the store.
func (p *ListPolicy[T]) Store(ctx context.Context, items []T) {
	blob, err := json.Marshal(items)
	if err != nil {
		p.logger.Error("marshal " + p.resource + " for cache: " + err.Error())
		return
	}

	if err = p.cache.Set(ctx, ListDataKey(p.resource), string(blob)); err != nil {
		return
	}

	marker := strconv.FormatInt(time.Now().UnixMilli(), 10)
	_ = p.cache.Set(ctx, ListExpiryKey(p.resource), marker)
}
