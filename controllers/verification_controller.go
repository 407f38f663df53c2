package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/campusfind/api-go/config"
	"github.com/campusfind/api-go/models"
	"github.com/campusfind/api-go/utils"
	"github.com/campusfind/api-go/verification"
)

type VerificationController struct {
	DB       *gorm.DB
	Matching *config.MatchingConfig
}

func NewVerificationController(db *gorm.DB, cfg *config.MatchingConfig) *VerificationController {
	return &VerificationController{DB: db, Matching: cfg}
}

type GenerateQuestionsRequest struct {
	MatchID uint `json:"match_id" binding:"required"`
}

type VerifyAnswersRequest struct {
	MatchID uint     `json:"match_id" binding:"required"`
	Answers []string `json:"answers" binding:"required"`
}

// GenerateQuestions handles POST /api/verification/generate-questions.
// Only the claiming owner may request a challenge, and only while the
// match is pending verification. Regeneration deactivates any prior
// challenge so at most one is active per match.
func (vc *VerificationController) GenerateQuestions(c *gin.Context) {
	user := utils.GetUser(c)
	var req GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, ok := vc.loadMatch(c, req.MatchID)
	if !ok {
		return
	}
	if match.RoleOf(user.UserID) != models.RoleOwner {
		failForbidden(c, "Only the item's owner can request verification questions")
		return
	}
	if match.Status != models.MatchStatusPending {
		failNotEligible(c, "Match is not awaiting verification")
		return
	}
	if vc.attemptsExhausted(match.ID) {
		failNotEligible(c, "Verification attempt limit reached for this match")
		return
	}

	questions := verification.BuildQuestions(match.LostItem, match.FoundItem)

	var challenge models.VerificationChallenge
	err := vc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VerificationChallenge{}).
			Where("match_id = ? AND active", match.ID).
			Update("active", false).Error; err != nil {
			return err
		}

		challenge = models.VerificationChallenge{MatchID: match.ID, Active: true}
		if err := tx.Create(&challenge).Error; err != nil {
			return err
		}

		for i, q := range questions {
			question := models.VerificationQuestion{
				ChallengeID:    challenge.ID,
				Position:       i,
				Prompt:         q.Prompt,
				Type:           q.Type,
				Options:        pq.StringArray(q.Options),
				ExpectedAnswer: q.Expected,
				Weight:         q.Weight,
			}
			if err := tx.Create(&question).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate questions"})
		return
	}

	// Answer keys stay server side.
	payload := make([]gin.H, 0, len(questions))
	for i, q := range questions {
		payload = append(payload, gin.H{
			"position": i,
			"question": q.Prompt,
			"type":     q.Type,
			"options":  q.Options,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"challenge": gin.H{
			"id":        challenge.ID,
			"match_id":  match.ID,
			"questions": payload,
		},
	})
}

// VerifyAnswers handles POST /api/verification/verify-answers. Grading
// and the match transition are atomic: the pass transition is a
// compare-and-swap on the pending status, so concurrent attempts
// cannot both verify the match.
func (vc *VerificationController) VerifyAnswers(c *gin.Context) {
	user := utils.GetUser(c)
	var req VerifyAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	match, ok := vc.loadMatch(c, req.MatchID)
	if !ok {
		return
	}
	if match.RoleOf(user.UserID) != models.RoleOwner {
		failForbidden(c, "Only the item's owner can submit verification answers")
		return
	}
	if match.Status != models.MatchStatusPending {
		failNotEligible(c, "Match is not awaiting verification")
		return
	}
	if vc.attemptsExhausted(match.ID) {
		failNotEligible(c, "Verification attempt limit reached for this match")
		return
	}

	var challenge models.VerificationChallenge
	err := vc.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("match_id = ? AND active", match.ID).First(&challenge).Error
	if err != nil {
		fail(c, http.StatusConflict, codeNoActiveChallenge, "No active challenge; generate questions first")
		return
	}

	result := verification.Grade(challenge.Questions, req.Answers, vc.Matching.PassThreshold)

	attempt := models.VerificationAttempt{
		MatchID:     match.ID,
		ChallengeID: challenge.ID,
		Answers:     pq.StringArray(req.Answers),
		Correct:     pq.BoolArray(result.Correct),
		Accuracy:    result.Accuracy,
		Passed:      result.Passed,
	}

	status := match.Status
	err = vc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		if !result.Passed {
			return nil
		}

		now := time.Now()
		res := tx.Model(&models.Match{}).
			Where("id = ? AND status = ?", match.ID, models.MatchStatusPending).
			Updates(map[string]interface{}{
				"status":      models.MatchStatusVerified,
				"verified_at": &now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrInvalidTransaction
		}
		status = models.MatchStatusVerified

		// The spent challenge can't be answered again.
		return tx.Model(&challenge).Update("active", false).Error
	})
	if err != nil {
		failConflict(c, "Match state changed concurrently, please reload")
		return
	}

	if result.Passed {
		go notifyAsync(vc.DB, match.FoundItem.ReporterID, match.ID, models.NotificationMatchVerified,
			"The owner passed verification. Contact details are now shared to arrange the handover.")
	}

	c.JSON(http.StatusOK, gin.H{
		"passed":   result.Passed,
		"accuracy": result.Accuracy,
		"status":   status,
	})
}

func (vc *VerificationController) loadMatch(c *gin.Context, matchID uint) (*models.Match, bool) {
	var match models.Match
	if err := vc.DB.Preload("LostItem").Preload("FoundItem").First(&match, matchID).Error; err != nil {
		failNotFound(c, "Match not found")
		return nil, false
	}
	return &match, true
}

// attemptsExhausted applies the configurable brute-force cap. The
// count is per match, not per challenge, so regenerating questions
// doesn't buy extra attempts.
func (vc *VerificationController) attemptsExhausted(matchID uint) bool {
	if vc.Matching.MaxAttempts <= 0 {
		return false
	}
	var attempts int64
	vc.DB.Model(&models.VerificationAttempt{}).Where("match_id = ?", matchID).Count(&attempts)
	return attempts >= int64(vc.Matching.MaxAttempts)
}
