package routes

import (
	"github.com/campusfind/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupMatchRoutes(r *gin.RouterGroup, matchController *controllers.MatchController) {
	matches := r.Group("/matches")
	{
		matches.GET("/user", matchController.GetUserMatches)
		matches.GET("/:id/contact", matchController.GetContactInfo)
	}
}
