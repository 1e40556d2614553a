package handler

import (
	"boardshelf/backend/internal/auth"

	"github.com/gin-gonic/gin"
)

// Register mounts every catalog route on router. Mutating routes go through
// the owner middleware.
func (h *Handler) Register(router *gin.Engine, authEnabled bool) {
	owner := auth.OwnerMiddleware(h.jwtSecret, authEnabled)

	// Health check endpoint
	router.GET("/ping", Ping)

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		apiV1.POST("/auth/login", h.Login)

		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", h.GetGames)
			gameRoutes.GET("/all", h.GetAllGames)
			gameRoutes.GET("/active", h.GetActiveGame)
			gameRoutes.GET("/:id", h.GetGameByID)

			gameRoutes.POST("", owner, h.CreateGame)
			gameRoutes.PUT("/active", owner, h.SetActiveGame)
			gameRoutes.PUT("/:id", owner, h.UpdateGame)
			gameRoutes.DELETE("/:id", owner, h.DeleteGame)
		}

		tagRoutes := apiV1.Group("/tags")
		{
			tagRoutes.GET("", h.GetTags)
			tagRoutes.GET("/labels", h.GetTagLabels)

			tagRoutes.POST("", owner, h.CreateTag)
			tagRoutes.PUT("/:id", owner, h.UpdateTag)
			tagRoutes.DELETE("/:id", owner, h.DeleteTag)
		}

		filterRoutes := apiV1.Group("/filter")
		{
			filterRoutes.GET("", h.GetFilter)
			filterRoutes.PATCH("", h.PatchFilter)
			filterRoutes.DELETE("", h.ClearFilter)
		}

		randomRoutes := apiV1.Group("/random")
		{
			randomRoutes.GET("", h.GetRandomGames)
			randomRoutes.POST("", h.PickRandomGames)
			randomRoutes.DELETE("", h.ClearRandomGames)
		}

		apiV1.GET("/events", h.Events)
	}
}
