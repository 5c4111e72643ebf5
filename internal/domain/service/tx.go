package service

import "context"

// TxManager scopes one unit of work: fn runs inside a single transaction
// that commits on nil return and rolls back on error. Storages called with
// the ctx passed to fn join that transaction.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
