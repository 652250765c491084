package cache

import (
	"context"
	"time"
)

// ResolveCache remembers which catalog item a normalized name query
// resolved to. Implementations are best-effort: the inventory store treats
// any error as a miss.
type ResolveCache interface {
	Get(ctx context.Context, query string) (itemID string, found bool, err error)
	Set(ctx context.Context, query string, itemID string, ttl time.Duration) error
}

type NoopResolveCache struct{}

func (NoopResolveCache) Get(_ context.Context, _ string) (string, bool, error) {
	return "", false, nil
}

func (NoopResolveCache) Set(_ context.Context, _ string, _ string, _ time.Duration) error {
	return nil
}
