package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizState is one user's persisted funnel progress. IdentityTag records the
// owning user id inside the row itself; a row whose tag does not match the
// loader is stale (for example after an account migration) and is discarded.
type QuizState struct {
	BaseModel
	ProfileID   uuid.UUID      `gorm:"uniqueIndex"`
	IdentityTag string         `gorm:"index"`
	Step        int            `gorm:"default:0"`
	Answers     datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CompletedAt *int64

	Profile Profile `gorm:"foreignKey:ProfileID"`
}
