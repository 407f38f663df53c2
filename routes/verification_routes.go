package routes

import (
	"github.com/campusfind/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupVerificationRoutes(r *gin.RouterGroup, verificationController *controllers.VerificationController) {
	verificationGroup := r.Group("/verification")
	{
		verificationGroup.POST("/generate-questions", verificationController.GenerateQuestions)
		verificationGroup.POST("/verify-answers", verificationController.VerifyAnswers)
	}
}
