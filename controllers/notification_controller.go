package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campusfind/api-go/models"
	"github.com/campusfind/api-go/utils"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetNotifications handles GET /api/notifications.
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	user := utils.GetUser(c)

	var notifications []models.Notification
	if err := nc.DB.
		Where("user_id = ?", user.UserID).
		Order("created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// MarkAsRead handles PUT /api/notifications/:id/read.
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	user := utils.GetUser(c)
	notificationID := c.Param("id")

	res := nc.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, user.UserID).
		Update("read", true)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if res.RowsAffected == 0 {
		failNotFound(c, "Notification not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// notifyAsync writes an in-app notification outside the caller's
// transaction. Dispatch is fire-and-forget: a failed write is logged,
// never surfaced, and no lock is held while it runs.
func notifyAsync(db *gorm.DB, userID, matchID uint, notificationType, message string) {
	notification := models.Notification{
		UserID:  userID,
		MatchID: matchID,
		Type:    notificationType,
		Message: message,
	}
	if err := db.Create(&notification).Error; err != nil {
		log.Printf("failed to create %s notification for user %d: %v", notificationType, userID, err)
	}
}
