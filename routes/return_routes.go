package routes

import (
	"github.com/campusfind/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupReturnRoutes(r *gin.RouterGroup, returnController *controllers.ReturnController) {
	returns := r.Group("/returns")
	{
		returns.POST("/confirm/:id", returnController.ConfirmReturn)
		returns.GET("/status/:id", returnController.GetReturnStatus)
	}
}
