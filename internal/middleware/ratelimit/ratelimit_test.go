package ratelimit

import (
	"testing"
	"time"
)

func newTestLimiter(t *testing.T, perMinute int) *Limiter {
	t.Helper()
	rl := NewLimiter(Config{RequestsPerMinute: perMinute, CleanupInterval: time.Hour})
	t.Cleanup(rl.Stop)
	return rl
}

func TestAllowWithinWindow(t *testing.T) {
	rl := newTestLimiter(t, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("request over the limit should be denied")
	}
}

func TestAllowTracksClientsIndependently(t *testing.T) {
	rl := newTestLimiter(t, 1)

	if !rl.Allow("10.0.0.1") {
		t.Fatalf("first client should be allowed")
	}
	if rl.Allow("10.0.0.1") {
		t.Fatalf("first client should be exhausted")
	}
	if !rl.Allow("10.0.0.2") {
		t.Fatalf("second client has its own window")
	}
	if got := rl.ActiveClients(); got != 2 {
		t.Fatalf("ActiveClients = %d, want 2", got)
	}
}

func TestCleanupDropsStaleClients(t *testing.T) {
	rl := newTestLimiter(t, 5)

	rl.Allow("10.0.0.1")
	rl.Allow("10.0.0.2")

	rl.mu.Lock()
	rl.clients["10.0.0.1"].lastRequest = time.Now().Add(-20 * time.Minute)
	rl.mu.Unlock()

	rl.cleanupStaleEntries()

	if got := rl.ActiveClients(); got != 1 {
		t.Fatalf("ActiveClients = %d, want 1 after cleanup", got)
	}
}
