package sequence

import (
	"context"
	"sync"
)

type memoryAllocator struct {
	mu       sync.Mutex
	counters map[string]int64
}

// NewMemoryAllocator builds an in-memory allocator for testing and
// development.
func NewMemoryAllocator() Allocator {
	return &memoryAllocator{counters: make(map[string]int64)}
}

func (a *memoryAllocator) Next(_ context.Context, space string) (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.counters[space]++
	return a.counters[space], nil
}
