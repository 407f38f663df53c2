package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Verification question types.
const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeShortAnswer    = "short_answer"
)

// VerificationChallenge is one generated set of ownership questions for
// a match. At most one challenge per match is active at a time;
// regeneration deactivates the previous one.
type VerificationChallenge struct {
	ID        uint                   `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
	DeletedAt gorm.DeletedAt         `gorm:"index" json:"deleted_at"`
	MatchID   uint                   `gorm:"not null;index" json:"match_id"`
	Match     Match                  `gorm:"foreignKey:MatchID" json:"-"`
	Active    bool                   `gorm:"not null;default:true" json:"active"`
	Questions []VerificationQuestion `gorm:"foreignKey:ChallengeID" json:"questions"`
}

// VerificationQuestion holds both the prompt shown to the owner and the
// withheld answer key. The key must never be serialized to clients.
type VerificationQuestion struct {
	ID             uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	ChallengeID    uint           `gorm:"not null;index" json:"challenge_id"`
	Position       int            `gorm:"not null" json:"position"`
	Prompt         string         `gorm:"not null;type:text" json:"question"`
	Type           string         `gorm:"not null;type:varchar(20)" json:"type"`
	Options        pq.StringArray `gorm:"type:text[]" json:"options"`
	ExpectedAnswer string         `gorm:"not null;type:text" json:"-"`
	Weight         int            `gorm:"not null" json:"-"`
}

// VerificationAttempt is one grading event, kept for audit regardless
// of outcome.
type VerificationAttempt struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	MatchID     uint           `gorm:"not null;index" json:"match_id"`
	ChallengeID uint           `gorm:"not null" json:"challenge_id"`
	Answers     pq.StringArray `gorm:"type:text[]" json:"answers"`
	Correct     pq.BoolArray   `gorm:"type:boolean[]" json:"correct"`
	Accuracy    int            `gorm:"not null" json:"accuracy"`
	Passed      bool           `gorm:"not null" json:"passed"`
}
