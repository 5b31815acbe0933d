package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gamestats-api/internal/bootstrap"
	"gamestats-api/internal/transport/http/handler"
	"gamestats-api/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(app.Logger),
		middleware.Recovery(app.Logger),
		cors.Default(),
	)

	healthHandler := handler.NewHealthHandler(app)
	authHandler := handler.NewAuthHandler(app.AuthService, app.Logger)
	statsHandler := handler.NewStatsHandler(app.StatsService, app.Logger)
	feedbackHandler := handler.NewFeedbackHandler(app.FeedbackService, app.Logger)

	router.GET("/healthz", healthHandler.Check)

	api := router.Group("/api")
	authGroup := api.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	api.GET("/players/stats", statsHandler.List)
	api.POST("/feedback", feedbackHandler.Submit)

	return router
}
