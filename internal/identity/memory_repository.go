package identity

import (
	"context"
	"sync"
	"time"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User // keyed by phone
}

// NewMemoryRepository builds an in-memory user store for testing and
// development. It honors the same create-or-fetch semantics as the Mongo
// repository.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) CreateIfAbsent(_ context.Context, user User) (User, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.users[user.Phone]; ok {
		return existing, false, nil
	}
	r.users[user.Phone] = user
	return user, true, nil
}

func (r *memoryRepository) FindByPhone(_ context.Context, phone string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[phone]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) Update(_ context.Context, id string, fields UserUpdate) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for phone, user := range r.users {
		if user.ID != id {
			continue
		}
		if fields.Name != "" {
			user.Name = fields.Name
		}
		if fields.Email != "" {
			user.Email = fields.Email
		}
		if fields.UserType != "" {
			user.UserType = fields.UserType
		}
		if fields.Avatar != "" {
			user.Avatar = fields.Avatar
		}
		user.LastLogin = time.Now().UTC()
		r.users[phone] = user
		return user, nil
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for phone, user := range r.users {
		if user.ID == id {
			user.LastLogin = at
			r.users[phone] = user
			return nil
		}
	}
	return ErrNotFound
}

func (r *memoryRepository) SetActiveOTP(_ context.Context, id, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for phone, user := range r.users {
		if user.ID == id {
			user.ActiveOTP = code
			r.users[phone] = user
			return nil
		}
	}
	return ErrNotFound
}
