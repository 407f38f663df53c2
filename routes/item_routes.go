package routes

import (
	"github.com/campusfind/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupItemRoutes(r *gin.RouterGroup, itemController *controllers.ItemController) {
	r.POST("/found-items", itemController.SubmitFoundItem)
	r.GET("/found-items", itemController.GetMyFoundItems)
	r.POST("/lost-items", itemController.SubmitLostItem)
	r.GET("/lost-items", itemController.GetMyLostItems)
	r.DELETE("/items/:referenceId", itemController.WithdrawItem)
	r.GET("/form-options", itemController.GetFormOptions)
}
