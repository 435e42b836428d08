package db_models

import (
	"github.com/lib/pq"
)

// LibraryItem is one article of the learning library. Free-tier users see
// only the teaser; the full body is part of the premium entitlement.
type LibraryItem struct {
	BaseModel
	Slug    string `gorm:"uniqueIndex"`
	Title   string
	Summary string
	Teaser  string
	Body    string         `gorm:"type:text"`
	Tags    pq.StringArray `gorm:"type:text[]"`
	Premium bool           `gorm:"default:true"`
}
