package routes

import (
	"github.com/campusfind/api-go/config"
	"github.com/campusfind/api-go/controllers"
	"github.com/campusfind/api-go/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	matchingConfig := config.LoadMatchingConfig()

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	uploadController := controllers.NewUploadController(db)
	itemController := controllers.NewItemController(db, matchingConfig, uploadController)
	matchController := controllers.NewMatchController(db, matchingConfig)
	verificationController := controllers.NewVerificationController(db, matchingConfig)
	returnController := controllers.NewReturnController(db)
	notificationController := controllers.NewNotificationController(db)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/register", authController.Register)
		public.POST("/auth/login", authController.Login)
		public.POST("/auth/refresh-token", authController.RefreshToken)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/auth/logout", authController.Logout)
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		// Setup other routes within the protected group
		SetupItemRoutes(protected, itemController)
		SetupMatchRoutes(protected, matchController)
		SetupVerificationRoutes(protected, verificationController)
		SetupReturnRoutes(protected, returnController)
		SetupNotificationRoutes(protected, notificationController)
		SetupUploadRoutes(protected, uploadController)
	}
}
