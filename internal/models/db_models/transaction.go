package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TransactionStatus string

const (
	TxnStatusPending  TransactionStatus = "pending"
	TxnStatusPaid     TransactionStatus = "paid"
	TxnStatusFailed   TransactionStatus = "failed"
	TxnStatusRefunded TransactionStatus = "refunded"
)

// Transaction records one checkout attempt. ProviderTxnID links the local row
// to the Stripe checkout session so webhook retries stay idempotent.
type Transaction struct {
	BaseModel
	ProfileID   uuid.UUID         `gorm:"index"`
	AmountMinor int64             // e.g. 999 = $9.99
	Currency    string            `gorm:"size:3"`
	Status      TransactionStatus `gorm:"index"`

	Provider      string `gorm:"index"`
	ProviderTxnID string `gorm:"uniqueIndex"`

	PaidAt     *int64
	RefundedAt *int64

	Metadata datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	Profile Profile `gorm:"foreignKey:ProfileID"`
}
