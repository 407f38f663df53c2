package routes

import (
	"github.com/campusfind/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupNotificationRoutes(r *gin.RouterGroup, notificationController *controllers.NotificationController) {
	notifications := r.Group("/notifications")
	{
		notifications.GET("", notificationController.GetNotifications)
		notifications.PUT("/:id/read", notificationController.MarkAsRead)
	}
}
