// Package cache memoizes deterministic analysis results in memory and,
// optionally, in Redis.
package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"
)

// Cache stores JSON-encodable values by key.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// keyPrefix namespaces analyzer entries in a shared Redis.
const keyPrefix = "ra"

// Key builds a deterministic cache key from an operation name and its inputs.
// Each part is length-prefixed so no two distinct part lists share a key.
func Key(op string, parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		_, _ = fmt.Fprintf(h, "%d:%s", len(part), part)
	}
	return fmt.Sprintf("%s:%s:%x", keyPrefix, op, h.Sum(nil)[:12])
}
