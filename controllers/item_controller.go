package controllers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/campusfind/api-go/config"
	"github.com/campusfind/api-go/matching"
	"github.com/campusfind/api-go/models"
	"github.com/campusfind/api-go/utils"
)

type ItemController struct {
	DB       *gorm.DB
	Matching *config.MatchingConfig
	Scorer   *matching.Scorer
	Uploads  *UploadController
}

func NewItemController(db *gorm.DB, cfg *config.MatchingConfig, uploads *UploadController) *ItemController {
	return &ItemController{
		DB:       db,
		Matching: cfg,
		Scorer:   matching.NewScorer(cfg),
		Uploads:  uploads,
	}
}

// SubmitFoundItem handles POST /api/found-items (multipart).
func (ic *ItemController) SubmitFoundItem(c *gin.Context) {
	ic.submitItem(c, models.PolarityFound, "date_found")
}

// SubmitLostItem handles POST /api/lost-items (multipart).
func (ic *ItemController) SubmitLostItem(c *gin.Context) {
	ic.submitItem(c, models.PolarityLost, "date_lost")
}

func (ic *ItemController) submitItem(c *gin.Context, polarity, dateField string) {
	user := utils.GetUser(c)

	category := c.PostForm("category")
	itemName := c.PostForm("item_name")
	brand := c.PostForm("brand")
	color := c.PostForm("color")
	location := c.PostForm("location")
	description := c.PostForm("description")
	additionalInfo := c.PostForm("additional_info")
	dateValue := c.PostForm(dateField)

	if !config.ValidCategory(category) {
		failValidation(c, "Please select a valid category")
		return
	}
	if itemName == "" || color == "" || location == "" || description == "" {
		failValidation(c, "Item name, color, location and description are required")
		return
	}

	eventDate, err := time.Parse("2006-01-02", dateValue)
	if err != nil {
		failValidation(c, "Invalid date, expected YYYY-MM-DD")
		return
	}
	if msg := ic.recencyProblem(eventDate); msg != "" {
		failValidation(c, msg)
		return
	}

	// Image storage is best effort: a failed upload must never cost the
	// reporter their submission.
	var imageURLs []string
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if files := form.File["images"]; len(files) > 0 {
			imageURLs, err = ic.Uploads.UploadReportImages(c.Request.Context(), user.UserID, files)
			if err != nil {
				log.Printf("image upload failed for user %d: %v", user.UserID, err)
				imageURLs = nil
			}
		}
	}

	item := models.Item{
		ReferenceID:    uuid.New().String(),
		Polarity:       polarity,
		ReporterID:     user.UserID,
		Category:       category,
		Name:           itemName,
		Brand:          brand,
		Color:          color,
		Location:       location,
		EventDate:      eventDate,
		Description:    description,
		AdditionalInfo: additionalInfo,
		ImageURLs:      pq.StringArray(imageURLs),
		Status:         models.ItemStatusActive,
	}

	if err := ic.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save report"})
		return
	}

	// Scoring failures degrade to "no candidates found"; the report
	// itself is already saved.
	matches, err := ic.registerCandidates(item)
	if err != nil {
		log.Printf("candidate matching failed for item %s: %v", item.ReferenceID, err)
		matches = nil
	}

	payload := make([]gin.H, 0, len(matches))
	for _, m := range matches {
		payload = append(payload, matchSummary(m, item.Polarity))
		counterpartID := m.LostItem.ReporterID
		if item.Polarity == models.PolarityLost {
			counterpartID = m.FoundItem.ReporterID
		}
		go notifyAsync(ic.DB, counterpartID, m.ID, models.NotificationMatchFound,
			"A new report looks like a possible match for one of your items.")
	}

	c.JSON(http.StatusCreated, gin.H{
		"reference_id":  item.ReferenceID,
		"matches_found": len(matches) > 0,
		"matches":       payload,
	})
}

// registerCandidates scores the new report against the opposite-type
// inventory and upserts one match row per surfaced candidate. The
// (lost_item_id, found_item_id) pair is unique, so a concurrent
// submission of the same pair refreshes the score instead of creating
// a duplicate.
func (ic *ItemController) registerCandidates(item models.Item) ([]models.Match, error) {
	oppositePolarity := models.PolarityFound
	if item.Polarity == models.PolarityFound {
		oppositePolarity = models.PolarityLost
	}

	horizon := time.Now().AddDate(0, 0, -ic.Matching.ReportWindowDays)

	var pool []models.Item
	err := ic.DB.
		Where("polarity = ? AND status = ? AND category = ? AND reporter_id <> ? AND event_date >= ?",
			oppositePolarity, models.ItemStatusActive, item.Category, item.ReporterID, horizon).
		Find(&pool).Error
	if err != nil {
		return nil, err
	}

	candidates := ic.Scorer.RankCandidates(item, pool)
	if len(candidates) == 0 {
		return nil, nil
	}

	var matches []models.Match
	err = ic.DB.Transaction(func(tx *gorm.DB) error {
		for _, cand := range candidates {
			lostID, foundID := item.ID, cand.Item.ID
			if item.Polarity == models.PolarityFound {
				lostID, foundID = cand.Item.ID, item.ID
			}

			row := models.Match{
				LostItemID:      lostID,
				FoundItemID:     foundID,
				SimilarityScore: cand.Score,
				Status:          models.MatchStatusPending,
			}

			// Create-or-refresh: score and timestamp only, status is
			// owned by the verification and return flows.
			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "lost_item_id"}, {Name: "found_item_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"similarity_score": cand.Score,
					"updated_at":       time.Now(),
				}),
			}).Create(&row).Error; err != nil {
				return err
			}

			var match models.Match
			if err := tx.Preload("LostItem").Preload("FoundItem").
				Where("lost_item_id = ? AND found_item_id = ?", lostID, foundID).
				First(&match).Error; err != nil {
				return err
			}
			matches = append(matches, match)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}

// GetMyFoundItems handles GET /api/found-items.
func (ic *ItemController) GetMyFoundItems(c *gin.Context) {
	ic.listMyItems(c, models.PolarityFound)
}

// GetMyLostItems handles GET /api/lost-items.
func (ic *ItemController) GetMyLostItems(c *gin.Context) {
	ic.listMyItems(c, models.PolarityLost)
}

func (ic *ItemController) listMyItems(c *gin.Context, polarity string) {
	user := utils.GetUser(c)

	var items []models.Item
	if err := ic.DB.
		Where("reporter_id = ? AND polarity = ?", user.UserID, polarity).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// WithdrawItem handles DELETE /api/items/:referenceId. Reports are
// immutable, so withdrawal only flips the lifecycle status; the row
// stays for match history.
func (ic *ItemController) WithdrawItem(c *gin.Context) {
	user := utils.GetUser(c)
	referenceID := c.Param("referenceId")

	var item models.Item
	if err := ic.DB.Where("reference_id = ?", referenceID).First(&item).Error; err != nil {
		failNotFound(c, "Report not found")
		return
	}

	if item.ReporterID != user.UserID {
		failForbidden(c, "You can only withdraw your own reports")
		return
	}
	if item.Status != models.ItemStatusActive {
		failNotEligible(c, "Report is no longer active")
		return
	}

	// A report in an ongoing verified match can't be pulled out from
	// under the counterparty.
	var busy int64
	ic.DB.Model(&models.Match{}).
		Where("(lost_item_id = ? OR found_item_id = ?) AND status = ?", item.ID, item.ID, models.MatchStatusVerified).
		Count(&busy)
	if busy > 0 {
		failNotEligible(c, "Report is part of a verified match and cannot be withdrawn")
		return
	}

	if err := ic.DB.Model(&item).Update("status", models.ItemStatusWithdrawn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to withdraw report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Report withdrawn"})
}

// GetFormOptions handles GET /api/form-options.
func (ic *ItemController) GetFormOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": config.Categories,
		"colors":     config.Colors,
		"locations":  config.LocationGroups,
	})
}

func (ic *ItemController) recencyProblem(eventDate time.Time) string {
	now := time.Now()
	if eventDate.After(now.AddDate(0, 0, 1)) {
		return "Event date cannot be in the future"
	}
	if eventDate.Before(now.AddDate(0, 0, -ic.Matching.ReportWindowDays)) {
		return fmt.Sprintf("Reports older than %d days cannot be submitted", ic.Matching.ReportWindowDays)
	}
	return ""
}

// matchSummary shapes one match for a submission response, from the
// submitting reporter's point of view.
func matchSummary(m models.Match, polarity string) gin.H {
	counterpart := m.FoundItem
	if polarity == models.PolarityFound {
		counterpart = m.LostItem
	}
	return gin.H{
		"id":               m.ID,
		"similarity_score": m.SimilarityScore,
		"status":           m.Status,
		"item_name":        counterpart.Name,
		"location":         counterpart.Location,
		"event_date":       counterpart.EventDate.Format("2006-01-02"),
	}
}
