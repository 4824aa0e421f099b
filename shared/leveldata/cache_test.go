package leveldata

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCacheLoadsOncePerIndex(t *testing.T) {
	var loads atomic.Int32
	c := NewCache(func(index int) (*Registry, error) {
		loads.Add(1)
		return NewRegistry(index, newFakeSource(), DefaultOptions())
	})

	first, err := c.Get(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.Get(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected the same registry on re-entry")
	}
	if n := loads.Load(); n != 1 {
		t.Errorf("expected 1 load, got %d", n)
	}
	if !c.Cached(2) || c.Cached(3) {
		t.Error("unexpected cache membership")
	}

	if _, err := c.Load(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := loads.Load(); n != 2 {
		t.Errorf("expected Load to bypass the cache, got %d loads", n)
	}
}

func TestCacheDoesNotKeepFailures(t *testing.T) {
	var loads atomic.Int32
	boom := errors.New("disk on fire")
	c := NewCache(func(index int) (*Registry, error) {
		if loads.Add(1) == 1 {
			return nil, &MapLoadError{Index: index, Path: "x.tmx", Err: boom}
		}
		return NewRegistry(index, newFakeSource(), DefaultOptions())
	})

	if _, err := c.Get(0); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped load error, got %v", err)
	}
	if c.Cached(0) {
		t.Fatal("expected failed load to leave nothing cached")
	}
	if _, err := c.Get(0); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
}

// Levels are loaded on the game loop today; this guards the cache for a
// future background loader.
func TestCacheConcurrentGetLoadsOnce(t *testing.T) {
	var loads atomic.Int32
	c := NewCache(func(index int) (*Registry, error) {
		loads.Add(1)
		time.Sleep(20 * time.Millisecond)
		return NewRegistry(index, newFakeSource(), DefaultOptions())
	})

	const workers = 16
	results := make([]*Registry, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := c.Get(5)
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results[i] = r
		}(i)
	}
	wg.Wait()

	if n := loads.Load(); n != 1 {
		t.Errorf("expected exactly 1 load, got %d", n)
	}
	for i, r := range results {
		if r != results[0] {
			t.Errorf("worker %d got a different registry", i)
		}
	}
}
