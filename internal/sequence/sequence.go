package sequence

import (
	"context"
	"fmt"
)

// SpaceUsers is the id space backing user display identifiers.
const SpaceUsers = "users"

// Allocator mints strictly increasing integers for a named id space. Values
// start at 1, are never reused, and no two concurrent callers may observe
// the same value.
type Allocator interface {
	Next(ctx context.Context, space string) (int64, error)
}

// FormatID renders an allocated value as the zero-padded display id
// ("001", "042", "1000").
func FormatID(n int64) string {
	return fmt.Sprintf("%03d", n)
}
