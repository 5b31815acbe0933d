package response

import "gamestats-api/internal/model"

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

type LoginResponse struct {
	Success bool              `json:"success"`
	User    model.AccountView `json:"user"`
}

type StatsResponse struct {
	Stats []model.LeaderboardEntry `json:"stats"`
}

type FeedbackResponse struct {
	Success    bool `json:"success"`
	FeedbackID uint `json:"feedbackId"`
}
