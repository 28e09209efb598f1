package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
)

// Tiered reads through a fast local cache to an optional shared one. L2
// failures are logged and treated as misses so that scoring never depends on
// Redis being up.
type Tiered struct {
	l1  Cache
	l2  Cache
	log *logrus.Logger
}

// NewTiered composes l1 and l2. l2 may be nil.
func NewTiered(l1, l2 Cache, log *logrus.Logger) *Tiered {
	return &Tiered{l1: l1, l2: l2, log: log}
}

// GetJSON checks L1, then L2; an L2 hit is copied into L1.
func (t *Tiered) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	if hit, err := t.l1.GetJSON(ctx, key, dst); err == nil && hit {
		return true, nil
	}
	if t.l2 == nil {
		return false, nil
	}

	var raw json.RawMessage
	hit, err := t.l2.GetJSON(ctx, key, &raw)
	if err != nil {
		t.warn("l2 get failed", key, err)
		return false, nil
	}
	if !hit {
		return false, nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, nil
	}
	_ = t.l1.SetJSON(ctx, key, raw, time.Minute)
	return true, nil
}

// SetJSON writes to both tiers.
func (t *Tiered) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	if err := t.l1.SetJSON(ctx, key, val, ttl); err != nil {
		return err
	}
	if t.l2 != nil {
		if err := t.l2.SetJSON(ctx, key, val, ttl); err != nil {
			t.warn("l2 set failed", key, err)
		}
	}
	return nil
}

// Del removes keys from both tiers.
func (t *Tiered) Del(ctx context.Context, keys ...string) error {
	if err := t.l1.Del(ctx, keys...); err != nil {
		return err
	}
	if t.l2 != nil {
		if err := t.l2.Del(ctx, keys...); err != nil {
			t.warn("l2 delete failed", "", err)
		}
	}
	return nil
}

func (t *Tiered) warn(msg, key string, err error) {
	if t.log == nil {
		return
	}
	t.log.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("cache: " + msg)
}
