package dto

import (
	"time"

	"campushire_backend/internal/models"
)

type UserResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	College    string    `json:"college"`
	IsVerified bool      `json:"is_verified"`
	VerifiedBy *string   `json:"verified_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// PosterInfo - краткая информация об авторе записи
type PosterInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Role:       string(u.Role),
		College:    u.College,
		IsVerified: u.IsVerified,
		VerifiedBy: u.VerifiedBy,
		CreatedAt:  u.CreatedAt,
	}
}

func NewUserListResponse(users []models.User) []*UserResponse {
	out := make([]*UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

func newPosterInfo(u *models.User) *PosterInfo {
	if u == nil {
		return nil
	}
	return &PosterInfo{ID: u.ID, Username: u.Username}
}
