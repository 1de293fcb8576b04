package repositories

import (
	"context"
)

// UnitOfWork wraps multi-repository writes in one transaction. A
// withdrawal debits the balance and records the request together, so
// either both land or neither does.
type UnitOfWork interface {
	// Do runs fn inside a transaction carried through ctx
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
