package routes

import (
	"github.com/campusfind/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(r *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := r.Group("/uploads")
	{
		// Direct-to-storage upload URLs for report photos
		upload.POST("/presign", uploadController.GetPresignedURLs)

		// Delete uploaded file
		upload.DELETE("/file/:key", uploadController.DeleteFile)
	}
}
