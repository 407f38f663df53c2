package models

import (
	"time"

	"gorm.io/gorm"
)

// Match statuses (stable wire values).
const (
	MatchStatusPending          = "pending_verification"
	MatchStatusVerified         = "verified"
	MatchStatusReturnedToOwner  = "returned_to_owner"
	MatchStatusReturnedByFinder = "returned_by_finder"
)

// Participant roles on a match.
const (
	RoleOwner  = "owner"
	RoleFinder = "finder"
)

// Match is a scored candidate pairing between exactly one lost item and
// one found item. The (lost_item_id, found_item_id) pair is unique;
// re-scoring refreshes the existing row in place. Matches are never
// deleted, only terminally closed.
type Match struct {
	ID              uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	LostItemID      uint           `gorm:"not null;uniqueIndex:idx_match_pair" json:"lost_item_id"`
	LostItem        Item           `gorm:"foreignKey:LostItemID" json:"-"`
	FoundItemID     uint           `gorm:"not null;uniqueIndex:idx_match_pair" json:"found_item_id"`
	FoundItem       Item           `gorm:"foreignKey:FoundItemID" json:"-"`
	SimilarityScore int            `gorm:"not null" json:"similarity_score"`
	Status          string         `gorm:"not null;default:'pending_verification';type:varchar(32)" json:"status"`
	VerifiedAt      *time.Time     `json:"verified_at"`
	ClosedAt        *time.Time     `json:"closed_at"`
}

// matchTransitions is the closed set of permitted status transitions.
// Anything not listed here is rejected; states never revert.
var matchTransitions = map[string][]string{
	MatchStatusPending:  {MatchStatusVerified},
	MatchStatusVerified: {MatchStatusReturnedToOwner, MatchStatusReturnedByFinder},
}

// CanTransition reports whether the status change from -> to is one of
// the directed edges of the match lifecycle.
func CanTransition(from, to string) bool {
	for _, next := range matchTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether a status has no outgoing transitions.
func IsTerminalStatus(status string) bool {
	switch status {
	case MatchStatusReturnedToOwner, MatchStatusReturnedByFinder:
		return true
	}
	return false
}

// ReturnedStatusFor maps a confirming role to its terminal status.
func ReturnedStatusFor(role string) string {
	if role == RoleFinder {
		return MatchStatusReturnedByFinder
	}
	return MatchStatusReturnedToOwner
}

// IsTerminal reports whether the match has reached a returned state.
func (m *Match) IsTerminal() bool {
	return IsTerminalStatus(m.Status)
}

// RoleOf returns the role a user plays on this match, or "" for a
// non-participant. Requires LostItem and FoundItem to be loaded.
func (m *Match) RoleOf(userID uint) string {
	switch userID {
	case m.LostItem.ReporterID:
		return RoleOwner
	case m.FoundItem.ReporterID:
		return RoleFinder
	}
	return ""
}
