package gormdb

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

// TxManager transaction manager
// Notes:
// 1. Wraps gorm's Transaction
// 2. The transaction *gorm.DB travels in the context, never in a global
// 3. fn returning an error rolls back; nil commits
type TxManager struct {
	db *gorm.DB
}

// NewTxManager creates a transaction manager
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction runs fn inside one transaction.
// Repositories called with the ctx handed to fn join that transaction.
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    b, err := bookRepo.FindByID(ctx, bookID)
//	    if err != nil {
//	        return err // rollback
//	    }
//	    return saleRepo.Create(ctx, s) // nil commits
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// getDB returns the transaction carried by ctx, or the default handle
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
