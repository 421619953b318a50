package catalog

import (
	"context"
	"sync"
)

// MemoryRepository holds catalog documents in memory for testing and
// development.
type MemoryRepository struct {
	mu      sync.RWMutex
	history *TransactionHistory
	game    *Game
}

// NewMemoryRepository builds an empty in-memory catalog repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SetTransactionHistory stores the sole history document.
func (r *MemoryRepository) SetTransactionHistory(history TransactionHistory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.history = &history
}

// SetGame stores the sole game document.
func (r *MemoryRepository) SetGame(game Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.game = &game
}

func (r *MemoryRepository) TransactionHistory(_ context.Context) (TransactionHistory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.history == nil {
		return TransactionHistory{}, ErrNotFound
	}
	return *r.history, nil
}

func (r *MemoryRepository) Game(_ context.Context) (Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.game == nil {
		return Game{}, ErrNotFound
	}
	return *r.game, nil
}
