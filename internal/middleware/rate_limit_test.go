package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	now := time.Now()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", now)
		if !allowed {
			t.Fatalf("Request %d should be allowed", i+1)
		}
	}

	if allowed, _ := limiter.Allow("10.0.0.1", now); allowed {
		t.Error("Fourth request within the window should be rejected")
	}

	// Another IP has its own window.
	if allowed, _ := limiter.Allow("10.0.0.2", now); !allowed {
		t.Error("Different IP should be allowed")
	}
}

func TestRateLimiter_WindowSlides(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	start := time.Now()

	limiter.Allow("10.0.0.1", start)
	limiter.Allow("10.0.0.1", start)

	if allowed, _ := limiter.Allow("10.0.0.1", start.Add(30*time.Second)); allowed {
		t.Error("Request inside the window should be rejected")
	}

	if allowed, _ := limiter.Allow("10.0.0.1", start.Add(61*time.Second)); !allowed {
		t.Error("Request after the window passed should be allowed")
	}
}
