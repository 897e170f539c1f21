package report

import (
	"testing"
	"time"
)

func TestMemoizerDo(t *testing.T) {
	m := NewMemoizer(time.Minute)

	calls := 0
	compute := func() any {
		calls++
		return []Bucket{{Key: "Design"}}
	}

	key := CacheKey("byCategory", 1, "en")
	first := m.Do(key, compute).([]Bucket)
	second := m.Do(key, compute).([]Bucket)

	if calls != 1 {
		t.Fatalf("compute ran %d times, want 1", calls)
	}
	if first[0].Key != "Design" || second[0].Key != "Design" {
		t.Fatalf("unexpected cached values")
	}
}

func TestMemoizerVersionBumpMissesCache(t *testing.T) {
	m := NewMemoizer(time.Minute)

	calls := 0
	compute := func() any {
		calls++
		return calls
	}

	m.Do(CacheKey("byCategory", 1, "en"), compute)
	m.Do(CacheKey("byCategory", 2, "en"), compute)
	if calls != 2 {
		t.Fatalf("compute ran %d times, want 2", calls)
	}
}

func TestCacheKeyDiscriminators(t *testing.T) {
	a := CacheKey("overview", 3, "en", "2024")
	b := CacheKey("overview", 3, "vi", "2024")
	if a == b {
		t.Fatalf("keys should differ per language")
	}
}
