package app

import (
	"recruiter_hub_backend/docs"
	"recruiter_hub_backend/internal/config"
	"recruiter_hub_backend/internal/middleware"
	"recruiter_hub_backend/internal/model"
	"recruiter_hub_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.Check)

	api := router.Group("/api")

	// Public: account creation and login.
	api.POST("/auth/register", c.auth.Register)
	api.POST("/auth/login", c.auth.Login)

	// Readable without an account; a valid token personalizes the response.
	browse := api.Group("/")
	browse.Use(middleware.TryAuthMiddleware(cfg))
	{
		browse.GET("/content", c.content.List)
		browse.GET("/content/:id", c.content.Get)
		browse.GET("/questions", c.qa.ListQuestions)
		browse.GET("/questions/:id", c.qa.GetQuestion)
		browse.GET("/learning-paths", c.learningPath.List)
		browse.GET("/learning-paths/:id", c.learningPath.Get)
		browse.GET("/kudos", c.kudos.Recent)
		browse.GET("/leaderboard", c.leaderboard.Get)
		browse.POST("/ai/search", c.ai.Search)
		browse.POST("/ai/answer", c.ai.Answer)
	}

	// Everything that writes requires a signed-in user.
	authed := api.Group("/")
	authed.Use(middleware.AuthMiddleware(cfg))
	{
		authed.POST("/content", c.content.Create)
		authed.PATCH("/content/:id", c.content.Update)
		authed.DELETE("/content/:id", c.content.Delete)
		authed.POST("/content/:id/progress", c.content.UpdateProgress)

		authed.POST("/questions", c.qa.CreateQuestion)
		authed.PATCH("/questions/:id", c.qa.UpdateQuestion)
		authed.DELETE("/questions/:id", c.qa.DeleteQuestion)
		authed.POST("/questions/:id/answers", c.qa.CreateAnswer)
		authed.POST("/answers/:id/accept", c.qa.AcceptAnswer)
		authed.POST("/answers/:id/upvote", c.qa.UpvoteAnswer)

		authed.POST("/kudos", c.kudos.Give)

		authed.GET("/users", c.user.Directory)
		authed.GET("/users/me", c.user.Me)
		authed.PATCH("/users/me", c.user.UpdateMe)

		authed.POST("/ai/generate", c.ai.Generate)

		authed.GET("/content-requests", c.contentRequest.List)
		authed.POST("/content-requests", c.contentRequest.Create)

		authed.POST("/uploads/video", c.upload.UploadVideo)
	}

	// Curriculum and triage management.
	admin := api.Group("/")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.POST("/learning-paths", c.learningPath.Create)
		admin.PATCH("/learning-paths/:id", c.learningPath.Update)
		admin.DELETE("/learning-paths/:id", c.learningPath.Delete)

		admin.PATCH("/content-requests/:id", c.contentRequest.UpdateStatus)
	}
}
