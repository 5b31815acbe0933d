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

type AuthHandler struct {
	authService *app.AuthService
	logger      *slog.Logger
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(authService *app.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgInvalidPayload)
		return
	}

	userID, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.MsgCredentialsMissing)
		case errors.Is(err, app.ErrUsernameExists):
			response.Error(c, http.StatusConflict, response.MsgUsernameExists)
		default:
			h.logger.Error("register failed", "request_id", middleware.GetRequestID(c), "error", err)
			response.Internal(c)
		}
		return
	}

	response.JSON(c, http.StatusCreated, response.RegisterResponse{
		Success: true,
		Message: response.MsgUserCreated,
		UserID:  userID,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, http.StatusBadRequest, response.MsgInvalidPayload)
		return
	}

	user, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, response.MsgCredentialsMissing)
		case errors.Is(err, app.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, response.MsgInvalidCredentials)
		default:
			h.logger.Error("login failed", "request_id", middleware.GetRequestID(c), "error", err)
			response.Internal(c)
		}
		return
	}

	response.JSON(c, http.StatusOK, response.LoginResponse{
		Success: true,
		User:    *user,
	})
}
