package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestRateLimiter_Allow(t *testing.T) {
	// 1 rps with a burst of 2: two immediate requests pass, the third is
	// rejected.
	rl := NewRateLimiter(1, 2)

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatalf("expected burst of 2 to be allowed")
	}
	if rl.Allow("a") {
		t.Fatalf("expected third immediate request to be rejected")
	}
	// Separate keys get separate buckets.
	if !rl.Allow("b") {
		t.Fatalf("expected fresh key to be allowed")
	}
}

func TestRateLimiter_EvictsIdleBuckets(t *testing.T) {
	current := time.Unix(1_700_000_000, 0)
	rl := NewRateLimiterWithNow(1, 1, func() time.Time { return current })

	rl.Allow("a")
	rl.Allow("b")

	// "a" goes idle; "b" stays active past the cutoff.
	current = current.Add(limiterIdleTTL + time.Second)
	rl.Allow("b")
	rl.evictIdle()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.limiters["a"]; ok {
		t.Fatalf("expected idle bucket to be evicted")
	}
	if _, ok := rl.limiters["b"]; !ok {
		t.Fatalf("expected active bucket to survive")
	}
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rl := NewRateLimiter(1, 1)
	r := gin.New()
	r.GET("/", rl.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}
}
