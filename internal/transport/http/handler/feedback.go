package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestats-api/internal/app"
	"gamestats-api/internal/transport/http/middleware"
	"gamestats-api/internal/transport/http/response"
)

type FeedbackHandler struct {
	feedbackService *app.FeedbackService
	logger          *slog.Logger
}

// FeedbackRequest takes playerId as a non-negative JSON number. Anything else
// fails to bind and gets the invalid payload response.
type FeedbackRequest struct {
	PlayerID uint   `json:"playerId"`
	Comment  string `json:"comment"`
}

func NewFeedbackHandler(feedbackService *app.FeedbackService, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService, logger: logger}
}

func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req FeedbackRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgInvalidPayload)
		return
	}

	feedbackID, err := h.feedbackService.Submit(c.Request.Context(), req.PlayerID, req.Comment)
	if err != nil {
		if errors.Is(err, app.ErrInvalidInput) {
			response.Error(c, http.StatusBadRequest, response.MsgFeedbackMissing)
			return
		}
		h.logger.Error("submit feedback failed", "request_id", middleware.GetRequestID(c), "error", err)
		response.Internal(c)
		return
	}

	response.JSON(c, http.StatusOK, response.FeedbackResponse{
		Success:    true,
		FeedbackID: feedbackID,
	})
}
