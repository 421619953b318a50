package sequence

import (
	"context"
	"sync"
	"testing"
)

func TestNextIsMonotonic(t *testing.T) {
	alloc := NewMemoryAllocator()
	ctx := context.Background()

	var prev int64
	for i := 0; i < 10; i++ {
		n, err := alloc.Next(ctx, SpaceUsers)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n != prev+1 {
			t.Fatalf("expected %d got %d", prev+1, n)
		}
		prev = n
	}
}

func TestNextSpacesAreIndependent(t *testing.T) {
	alloc := NewMemoryAllocator()
	ctx := context.Background()

	if n, _ := alloc.Next(ctx, SpaceUsers); n != 1 {
		t.Fatalf("expected 1 got %d", n)
	}
	if n, _ := alloc.Next(ctx, "rooms"); n != 1 {
		t.Fatalf("expected fresh space to start at 1, got %d", n)
	}
	if n, _ := alloc.Next(ctx, SpaceUsers); n != 2 {
		t.Fatalf("expected 2 got %d", n)
	}
}

func TestNextConcurrentAllocationsAreDistinct(t *testing.T) {
	const workers = 64

	alloc := NewMemoryAllocator()
	ctx := context.Background()

	results := make(chan int64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := alloc.Next(ctx, SpaceUsers)
			if err != nil {
				t.Errorf("next: %v", err)
				return
			}
			results <- n
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[int64]bool, workers)
	for n := range results {
		if seen[n] {
			t.Fatalf("value %d dispensed twice", n)
		}
		seen[n] = true
	}

	// contiguous range with no gaps
	for i := int64(1); i <= workers; i++ {
		if !seen[i] {
			t.Fatalf("value %d missing from allocated range", i)
		}
	}
}

func TestFormatID(t *testing.T) {
	cases := map[int64]string{
		1:    "001",
		42:   "042",
		999:  "999",
		1000: "1000",
	}
	for n, want := range cases {
		if got := FormatID(n); got != want {
			t.Fatalf("FormatID(%d) = %q, want %q", n, got, want)
		}
	}
}
