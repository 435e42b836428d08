package db_models

type Profile struct {
	BaseModel
	Email       string `gorm:"uniqueIndex"`
	DisplayName string
	Role        string `gorm:"default:user"`

	// Premium is the one-time-purchase entitlement gating the chat assistant
	// and full analysis detail.
	IsPremium     bool `gorm:"default:false"`
	PremiumSince  *int64
	StripeCustRef string `gorm:"index"`
}
