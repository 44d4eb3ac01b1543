package repo

import "context"

// Transactor runs fn inside one storage transaction. Every read and write made
// through the ctx passed to fn sees a single consistent snapshot, which the
// pricing engine relies on when it reads product prices and menu line items.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
