package app

import (
	"truth_buddy_backend/docs"
	"truth_buddy_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.Check)

		api.POST("/auth/login", c.auth.Login)
		api.POST("/auth/logout", c.auth.Logout)

		api.GET("/user", c.user.GetCurrentUser)
		api.PUT("/user/profile", c.user.UpdateProfile)
		api.POST("/user/refresh", c.user.RefreshUser)

		api.GET("/questions/home", c.question.HomeFeed)
		api.GET("/questions", c.question.List)
		api.POST("/questions/:id/answer", c.answer.Submit)

		api.GET("/leaderboard", c.leaderboard.Get)

		api.POST("/verify", c.verification.Verify)
		api.GET("/verify/history", c.verification.History)
	}
}
