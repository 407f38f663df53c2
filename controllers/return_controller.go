package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusfind/api-go/models"
	"github.com/campusfind/api-go/utils"
)

type ReturnController struct {
	DB *gorm.DB
}

func NewReturnController(db *gorm.DB) *ReturnController {
	return &ReturnController{DB: db}
}

// ConfirmReturn handles POST /api/returns/confirm/:id. Each role's
// confirmation is an independent idempotent write, tolerant of both
// arrival orders: the first one CAS-transitions the verified match to
// its role-specific terminal status, the second is recorded without a
// further transition, and closed_at is stamped once both exist.
func (rc *ReturnController) ConfirmReturn(c *gin.Context) {
	user := utils.GetUser(c)

	match, ok := rc.loadMatchForUser(c, user.UserID)
	if !ok {
		return
	}
	role := match.RoleOf(user.UserID)

	if match.Status != models.MatchStatusVerified && !match.IsTerminal() {
		failNotEligible(c, "Match must be verified before confirming a return")
		return
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		// Unique (match_id, role) makes the repeat confirmation a no-op.
		confirmation := models.ReturnConfirmation{
			MatchID: match.ID,
			Role:    role,
			UserID:  user.UserID,
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&confirmation).Error; err != nil {
			return err
		}

		// First confirmation wins the terminal transition; losing the
		// race just means the match is already closed.
		res := tx.Model(&models.Match{}).
			Where("id = ? AND status = ?", match.ID, models.MatchStatusVerified).
			Update("status", models.ReturnedStatusFor(role))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			if err := closeOutItems(tx, match); err != nil {
				return err
			}
		}

		var confirmed int64
		if err := tx.Model(&models.ReturnConfirmation{}).
			Where("match_id = ?", match.ID).Count(&confirmed).Error; err != nil {
			return err
		}
		if confirmed >= 2 {
			now := time.Now()
			if err := tx.Model(&models.Match{}).
				Where("id = ? AND closed_at IS NULL", match.ID).
				Update("closed_at", &now).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		failConflict(c, "Could not record the confirmation, please retry")
		return
	}

	var updated models.Match
	if err := rc.DB.First(&updated, match.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch match"})
		return
	}

	counterpartID := match.FoundItem.ReporterID
	if role == models.RoleFinder {
		counterpartID = match.LostItem.ReporterID
	}
	go notifyAsync(rc.DB, counterpartID, match.ID, models.NotificationReturnConfirmed,
		"The other party confirmed the item handover.")

	c.JSON(http.StatusOK, gin.H{
		"status":    updated.Status,
		"closed_at": updated.ClosedAt,
	})
}

// GetReturnStatus handles GET /api/returns/status/:id.
func (rc *ReturnController) GetReturnStatus(c *gin.Context) {
	user := utils.GetUser(c)

	match, ok := rc.loadMatchForUser(c, user.UserID)
	if !ok {
		return
	}

	var confirmations []models.ReturnConfirmation
	if err := rc.DB.Where("match_id = ?", match.ID).Find(&confirmations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch return status"})
		return
	}

	roles := make([]string, 0, len(confirmations))
	for _, conf := range confirmations {
		roles = append(roles, conf.Role)
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          match.Status,
		"confirmed_roles": roles,
		"closed_at":       match.ClosedAt,
	})
}

func (rc *ReturnController) loadMatchForUser(c *gin.Context, userID uint) (*models.Match, bool) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		failValidation(c, "Invalid match id")
		return nil, false
	}

	var match models.Match
	if err := rc.DB.Preload("LostItem").Preload("FoundItem").First(&match, matchID).Error; err != nil {
		failNotFound(c, "Match not found")
		return nil, false
	}

	if match.RoleOf(userID) == "" {
		failForbidden(c, "You are not a participant in this match")
		return nil, false
	}

	return &match, true
}

// closeOutItems retires both reports once the match reaches a terminal
// state so they stop surfacing as candidates for new submissions.
func closeOutItems(tx *gorm.DB, match *models.Match) error {
	return tx.Model(&models.Item{}).
		Where("id IN ? AND status = ?", []uint{match.LostItemID, match.FoundItemID}, models.ItemStatusActive).
		Update("status", models.ItemStatusExpired).Error
}
