// Package otp holds code generation and the expiring code cache used by the
// expiring OTP lifecycle policy. The cache is an explicit dependency of the
// identity service so a distributed backend can replace the in-process map
// under multi-instance deployment.
package otp

import (
	"context"
	"errors"
	"math/rand"
	"strconv"
	"time"
)

// ErrNotFound indicates no live code exists for the key, either because none
// was issued or because it expired.
var ErrNotFound = errors.New("otp not found")

// Store tracks issued codes with a per-entry time to live.
type Store interface {
	Put(ctx context.Context, key, code string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
}

// GenerateCode returns a 6-digit decimal code drawn uniformly from
// [100000, 999999].
func GenerateCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
