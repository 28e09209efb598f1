package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestTokenBucket_Take(t *testing.T) {
	start := time.Now()
	bucket := newTokenBucket(10, 1.0, start) // 10 tokens, 1 token per second

	for i := 0; i < 10; i++ {
		if allowed, _, _ := bucket.take(start); !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
	}

	if allowed, remaining, _ := bucket.take(start); allowed || remaining != 0 {
		t.Errorf("Expected 11th request to be denied with 0 remaining, got allowed=%v remaining=%d", allowed, remaining)
	}
}

func TestTokenBucket_Refill(t *testing.T) {
	start := time.Now()
	bucket := newTokenBucket(10, 1.0, start)

	for i := 0; i < 10; i++ {
		bucket.take(start)
	}

	later := start.Add(1100 * time.Millisecond)
	if allowed, _, _ := bucket.take(later); !allowed {
		t.Error("Expected request to be allowed after refill")
	}
	if allowed, _, _ := bucket.take(later); allowed {
		t.Error("Expected request to be denied after consuming refilled token")
	}
}

func TestTokenBucket_ResetTime(t *testing.T) {
	start := time.Now()
	bucket := newTokenBucket(10, 1.0, start)

	_, remaining, resetTime := bucket.take(start)
	if remaining != 9 {
		t.Errorf("Expected 9 remaining, got %d", remaining)
	}
	if want := start.Add(time.Second); !resetTime.Equal(want) {
		t.Errorf("Expected reset at %v, got %v", want, resetTime)
	}
}

func TestLimiter_Allow(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		Now:           clock.Now,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/sample-jobs", "GET")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 10 {
			t.Errorf("Expected limit 10, got %d", info.Limit)
		}
		if info.Remaining != 9-i {
			t.Errorf("Expected remaining %d, got %d", 9-i, info.Remaining)
		}
	}

	allowed, info := limiter.Allow("127.0.0.1", "/sample-jobs", "GET")
	if allowed {
		t.Error("Expected 11th request to be denied")
	}
	if info.RetryAfter <= 0 {
		t.Error("Expected retry after to be positive")
	}

	// 10 per minute refills one token every 6 seconds
	clock.Advance(7 * time.Second)
	if allowed, _ := limiter.Allow("127.0.0.1", "/sample-jobs", "GET"); !allowed {
		t.Error("Expected request to be allowed after refill")
	}
}

func TestLimiter_WhitelistBlacklistDisabled(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		client  string
		allowed bool
	}{
		{
			name:    "whitelisted",
			config:  &Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Minute, Whitelist: map[string]bool{"127.0.0.1": true}},
			client:  "127.0.0.1",
			allowed: true,
		},
		{
			name:    "blacklisted",
			config:  &Config{Enabled: true, DefaultLimit: 1000, DefaultWindow: time.Minute, Blacklist: map[string]bool{"192.168.1.1": true}},
			client:  "192.168.1.1",
			allowed: false,
		},
		{
			name:    "disabled",
			config:  &Config{Enabled: false},
			client:  "127.0.0.1",
			allowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limiter := NewLimiter(tt.config)
			defer limiter.Stop()

			for i := 0; i < 50; i++ {
				allowed, info := limiter.Allow(tt.client, "/ats-score", "POST")
				if allowed != tt.allowed {
					t.Fatalf("request %d: expected allowed=%v", i+1, tt.allowed)
				}
				if info.Limit != 0 {
					t.Fatalf("expected limit 0, got %d", info.Limit)
				}
			}
		})
	}
}

func TestLimiter_EndpointSpecific(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		EndpointConfigs: DefaultEndpointConfigs(),
	})
	defer limiter.Stop()

	// /match allows a burst of 5
	for i := 0; i < 5; i++ {
		allowed, info := limiter.Allow("127.0.0.1", "/match", "POST")
		if !allowed {
			t.Errorf("Expected request %d to be allowed", i+1)
		}
		if info.Limit != 60 {
			t.Errorf("Expected limit 60, got %d", info.Limit)
		}
	}
	if allowed, _ := limiter.Allow("127.0.0.1", "/match", "POST"); allowed {
		t.Error("Expected 6th request to be denied")
	}

	// /match/lexical is a separate, more lenient tier
	if allowed, info := limiter.Allow("127.0.0.1", "/match/lexical", "POST"); !allowed || info.Limit != 600 {
		t.Errorf("Expected lexical match allowed with limit 600, got allowed=%v limit=%d", allowed, info.Limit)
	}

	// other clients are unaffected
	if allowed, _ := limiter.Allow("10.0.0.2", "/match", "POST"); !allowed {
		t.Error("Expected a different client to be allowed")
	}

	// unknown endpoints use the default limit
	if _, info := limiter.Allow("127.0.0.1", "/sample-jobs", "GET"); info.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", info.Limit)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Now:           clock.Now,
	})
	defer limiter.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowedCount := 0

	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if allowed, _ := limiter.Allow("127.0.0.1", "/ats-score", "GET"); allowed {
				mu.Lock()
				allowedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowedCount != 100 {
		t.Errorf("Expected 100 allowed requests, got %d", allowedCount)
	}
}

func TestLimiter_Cleanup(t *testing.T) {
	clock := newFakeClock()
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
		IdleTTL:       time.Minute,
		Now:           clock.Now,
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/ats-score", "POST")
	}
	if limiter.Size() != 10 {
		t.Fatalf("Expected 10 buckets, got %d", limiter.Size())
	}

	clock.Advance(45 * time.Second)
	for i := 0; i < 5; i++ {
		limiter.Allow(fmt.Sprintf("127.0.0.%d", i+1), "/ats-score", "POST")
	}

	clock.Advance(30 * time.Second)
	if removed := limiter.Cleanup(); removed != 5 {
		t.Errorf("Expected 5 idle buckets removed, got %d", removed)
	}
	if limiter.Size() != 5 {
		t.Errorf("Expected 5 buckets left, got %d", limiter.Size())
	}
}

func TestNewLimiter_NilConfig(t *testing.T) {
	limiter := NewLimiter(nil)
	defer limiter.Stop()

	allowed, info := limiter.Allow("127.0.0.1", "/sample-jobs", "GET")
	if !allowed {
		t.Error("Expected request to be allowed with default config")
	}
	if info.Limit != 1000 {
		t.Errorf("Expected default limit 1000, got %d", info.Limit)
	}
}

func TestLimiter_StopTwice(t *testing.T) {
	limiter := NewLimiter(nil)
	limiter.Stop()
	limiter.Stop()
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/match", Method: "POST", Limit: 60},
		{Path: "/admin/", Method: "POST", Limit: 5},
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantNil   bool
		wantLimit int
	}{
		{name: "health unlimited", path: "/health", method: "GET", wantLimit: 0},
		{name: "metrics unlimited", path: "/metrics", method: "GET", wantLimit: 0},
		{name: "exact", path: "/match", method: "POST", wantLimit: 60},
		{name: "exact does not prefix", path: "/match/lexical", method: "POST", wantNil: true},
		{name: "prefix", path: "/admin/reset", method: "POST", wantLimit: 5},
		{name: "method mismatch", path: "/match", method: "GET", wantNil: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("expected no match, got %+v", got)
				}
				return
			}
			if got == nil {
				t.Fatal("expected a match")
			}
			if got.Limit != tt.wantLimit {
				t.Errorf("expected limit %d, got %d", tt.wantLimit, got.Limit)
			}
		})
	}
}
