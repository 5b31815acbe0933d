package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestats-api/internal/app"
	"gamestats-api/internal/transport/http/middleware"
	"gamestats-api/internal/transport/http/response"
)

type StatsHandler struct {
	statsService *app.StatsService
	logger       *slog.Logger
}

func NewStatsHandler(statsService *app.StatsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{statsService: statsService, logger: logger}
}

func (h *StatsHandler) List(c *gin.Context) {
	entries, err := h.statsService.ListStats(c.Request.Context())
	if err != nil {
		h.logger.Error("list player stats failed", "request_id", middleware.GetRequestID(c), "error", err)
		response.Internal(c)
		return
	}

	response.JSON(c, http.StatusOK, response.StatsResponse{Stats: entries})
}
