package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"pathfinders/internal/models/db_models"
)

type TransactionRepository interface {
	Insert(ctx context.Context, txn *db_models.Transaction) error
	FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error)
	MarkPaid(ctx context.Context, txn *db_models.Transaction) error
	MarkFailed(ctx context.Context, txn *db_models.Transaction) error
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

func (t *transactionRepository) Insert(ctx context.Context, txn *db_models.Transaction) error {
	return t.db.WithContext(ctx).Create(txn).Error
}

func (t *transactionRepository) FindByProviderTxnID(ctx context.Context, providerTxnID string) (*db_models.Transaction, error) {
	var txn db_models.Transaction
	err := t.db.WithContext(ctx).First(&txn, "provider_txn_id = ?", providerTxnID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &txn, nil
}

func (t *transactionRepository) MarkPaid(ctx context.Context, txn *db_models.Transaction) error {
	now := time.Now().Unix()
	return t.db.WithContext(ctx).Model(txn).
		Updates(map[string]interface{}{"status": db_models.TxnStatusPaid, "paid_at": now}).Error
}

func (t *transactionRepository) MarkFailed(ctx context.Context, txn *db_models.Transaction) error {
	return t.db.WithContext(ctx).Model(txn).
		Updates(map[string]interface{}{"status": db_models.TxnStatusFailed}).Error
}
