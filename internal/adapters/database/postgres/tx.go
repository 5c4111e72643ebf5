package postgres

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager runs a unit of work inside one gorm transaction. The transaction
// handle travels in the context, so every storage called with that context
// joins the same transaction.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{
		db: db,
	}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// conn resolves the transaction handle from ctx, falling back to the root
// connection for reads outside a unit of work.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
