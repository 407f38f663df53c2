package models

import "time"

// ReturnConfirmation is one party's attestation that the physical
// handover happened. Unique per (match, role) so repeated confirmations
// are no-ops.
type ReturnConfirmation struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	MatchID   uint      `gorm:"not null;uniqueIndex:idx_return_once" json:"match_id"`
	Match     Match     `gorm:"foreignKey:MatchID" json:"-"`
	Role      string    `gorm:"not null;type:varchar(6);uniqueIndex:idx_return_once" json:"role"` // "owner" or "finder"
	UserID    uint      `gorm:"not null" json:"user_id"`
}
