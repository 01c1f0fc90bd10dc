package routes

import (
	"github.com/gin-gonic/gin"

	"myovai/controllers"
	"myovai/middleware"
)

func SetupRoutes(router *gin.RouterGroup) {
	router.POST("/signup", controllers.Signup())
	router.POST("/login", controllers.Login())

	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		// Current user
		protected.GET("/me", controllers.GetMe())
		protected.POST("/me/push-token", controllers.RegisterPushToken())

		// Cycle logging
		protected.GET("/cycles", controllers.GetCycles())
		protected.POST("/cycles/selection", controllers.BeginSelection())
		protected.DELETE("/cycles/selection", controllers.CancelSelection())
		protected.POST("/cycles/start", controllers.RecordPhaseStart())
		protected.POST("/cycles/end", controllers.RecordPhaseEnd())
		protected.PUT("/cycles/:id/phase", controllers.EditPhase())
		protected.POST("/cycles/:id/save", controllers.SaveEdit())
		protected.POST("/cycles/:id/symptoms", controllers.RecordSymptoms())
		protected.DELETE("/cycles", controllers.ResetCycles())

		// Calendar
		protected.GET("/cycles/markings", controllers.GetMarkings())
	}
}
