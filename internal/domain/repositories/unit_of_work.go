package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations
type UnitOfWork interface {
	// Do executes the given function within a transaction scope
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	// WithLock marks reads made with the returned context as row-locking
	// (SELECT ... FOR UPDATE) when they run inside Do.
	WithLock(ctx context.Context) context.Context
}
