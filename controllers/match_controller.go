package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusfind/api-go/config"
	"github.com/campusfind/api-go/models"
	"github.com/campusfind/api-go/utils"
)

type MatchController struct {
	DB       *gorm.DB
	Matching *config.MatchingConfig
}

func NewMatchController(db *gorm.DB, cfg *config.MatchingConfig) *MatchController {
	return &MatchController{DB: db, Matching: cfg}
}

// GetUserMatches handles GET /api/matches/user. A match is visible to
// exactly the two reporters involved; each sees their own role.
func (mc *MatchController) GetUserMatches(c *gin.Context) {
	user := utils.GetUser(c)

	var rows []struct {
		models.Match
		LostReporterID  uint      `json:"-"`
		FoundReporterID uint      `json:"-"`
		LostItemName    string    `json:"lost_item_name"`
		FoundItemName   string    `json:"found_item_name"`
		LocationLost    string    `json:"location_lost"`
		LocationFound   string    `json:"location_found"`
		DateLost        time.Time `json:"date_lost"`
		DateFound       time.Time `json:"date_found"`
		LostDescription string    `json:"lost_description"`
	}

	result := mc.DB.Model(&models.Match{}).
		Select(`
			matches.*,
			lost.reporter_id as lost_reporter_id,
			found.reporter_id as found_reporter_id,
			lost.name as lost_item_name,
			found.name as found_item_name,
			lost.location as location_lost,
			found.location as location_found,
			lost.event_date as date_lost,
			found.event_date as date_found,
			lost.description as lost_description
		`).
		Joins("JOIN items lost ON matches.lost_item_id = lost.id").
		Joins("JOIN items found ON matches.found_item_id = found.id").
		Where("(lost.reporter_id = ? OR found.reporter_id = ?)", user.UserID, user.UserID).
		Where("matches.similarity_score >= ?", mc.Matching.MinScore).
		Where("lost.status <> ? AND found.status <> ?", models.ItemStatusWithdrawn, models.ItemStatusWithdrawn).
		Order("matches.created_at DESC").
		Find(&rows)

	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching matches"})
		return
	}

	matches := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		role := models.RoleOwner
		if row.FoundReporterID == user.UserID {
			role = models.RoleFinder
		}
		matches = append(matches, gin.H{
			"id":               row.ID,
			"similarity_score": row.SimilarityScore,
			"user_role":        role,
			"status":           row.Status,
			"lost_item_name":   row.LostItemName,
			"found_item_name":  row.FoundItemName,
			"location_lost":    row.LocationLost,
			"location_found":   row.LocationFound,
			"date_lost":        row.DateLost.Format("2006-01-02"),
			"date_found":       row.DateFound.Format("2006-01-02"),
			"lost_description": row.LostDescription,
		})
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// GetContactInfo handles GET /api/matches/:id/contact. Contact details
// are released only once this specific match is verified (or already
// returned), and only to its two participants.
func (mc *MatchController) GetContactInfo(c *gin.Context) {
	user := utils.GetUser(c)

	match, ok := mc.loadMatchForUser(c, user.UserID)
	if !ok {
		return
	}

	if match.Status != models.MatchStatusVerified && !match.IsTerminal() {
		failForbidden(c, "Contact details are only available after ownership verification")
		return
	}

	// The caller gets the counterparty's details, never their own.
	counterpartRole := models.RoleFinder
	counterpartID := match.FoundItem.ReporterID
	if match.RoleOf(user.UserID) == models.RoleFinder {
		counterpartRole = models.RoleOwner
		counterpartID = match.LostItem.ReporterID
	}

	var counterpart models.User
	if err := mc.DB.First(&counterpart, counterpartID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"role":           counterpartRole,
		"contact_name":   counterpart.FullName,
		"contact_number": counterpart.Phone,
		"contact_email":  counterpart.Email,
	})
}

// loadMatchForUser fetches a match with both items and enforces
// participant-only access. On failure it writes the response and
// returns ok=false.
func (mc *MatchController) loadMatchForUser(c *gin.Context, userID uint) (*models.Match, bool) {
	matchID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		failValidation(c, "Invalid match id")
		return nil, false
	}

	var match models.Match
	if err := mc.DB.Preload("LostItem").Preload("FoundItem").First(&match, matchID).Error; err != nil {
		failNotFound(c, "Match not found")
		return nil, false
	}

	if match.RoleOf(userID) == "" {
		failForbidden(c, "You are not a participant in this match")
		return nil, false
	}

	return &match, true
}
