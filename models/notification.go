package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification types.
const (
	NotificationMatchFound      = "match_found"
	NotificationMatchVerified   = "match_verified"
	NotificationReturnConfirmed = "return_confirmed"
)

// Notification is an in-app feed entry created when a match changes
// state. Delivery transport (push, email) is out of scope; the client
// polls these.
type Notification struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	MatchID   uint           `json:"match_id"`
	Type      string         `gorm:"not null;type:varchar(30)" json:"type"`
	Message   string         `gorm:"not null;type:text" json:"message"`
	Read      bool           `gorm:"not null;default:false" json:"read"`
}
