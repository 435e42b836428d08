package db_models

import (
	"gorm.io/datatypes"
)

// Plan is a one-time purchase offer, mapped to a Stripe price. There is no
// recurring billing in this product.
type Plan struct {
	BaseModel
	Code          string `gorm:"uniqueIndex"` // e.g. "starter", "lifetime"
	Name          string
	Description   *string
	PriceMinor    int64  // 999 = $9.99
	Currency      string `gorm:"size:3"`
	StripePriceID string
	IsActive      bool `gorm:"default:true"`

	Features datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
