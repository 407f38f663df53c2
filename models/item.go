package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Item polarity: which side of a report this is.
const (
	PolarityLost  = "lost"
	PolarityFound = "found"
)

// Item lifecycle statuses.
const (
	ItemStatusActive    = "active"
	ItemStatusWithdrawn = "withdrawn"
	ItemStatusExpired   = "expired"
)

// Item is a single lost or found report. Reports are immutable once
// submitted; only their lifecycle status changes (withdrawn by the
// reporter, expired when the match closes out).
type Item struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	ReferenceID    string         `gorm:"uniqueIndex;not null;type:varchar(36)" json:"reference_id"`
	Polarity       string         `gorm:"not null;type:varchar(5);index" json:"polarity"` // "lost" or "found"
	ReporterID     uint           `gorm:"not null;index" json:"reporter_id"`
	Reporter       User           `gorm:"foreignKey:ReporterID" json:"-"`
	Category       string         `gorm:"not null;type:varchar(50)" json:"category"`
	Name           string         `gorm:"not null" json:"item_name"`
	Brand          string         `json:"brand"`
	Color          string         `gorm:"not null;type:varchar(30)" json:"color"`
	Location       string         `gorm:"not null" json:"location"`
	EventDate      time.Time      `gorm:"not null" json:"event_date"` // date_lost or date_found
	Description    string         `gorm:"type:text" json:"description"`
	AdditionalInfo string         `gorm:"type:text" json:"additional_info"`
	ImageURLs      pq.StringArray `gorm:"type:text[]" json:"image_urls"`
	Status         string         `gorm:"not null;default:'active';type:varchar(10)" json:"status"` // active, withdrawn, expired
}
