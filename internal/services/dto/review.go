package dto

import (
	"time"

	"campushire_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

type RoundRequest struct {
	RoundNumber int    `json:"round_number" validate:"required,min=1"`
	Experience  string `json:"experience" validate:"required"`
}

type CreateReviewRequest struct {
	JobID             string         `json:"job_id" validate:"required"`
	Rounds            []RoundRequest `json:"rounds" validate:"required,min=1,dive"`
	OverallExperience string         `json:"overall_experience" validate:"required"`
}

// UpdateReviewRequest: если rounds присланы, они заменяют все этапы целиком
type UpdateReviewRequest struct {
	Rounds            []RoundRequest `json:"rounds,omitempty" validate:"omitempty,min=1,dive"`
	OverallExperience *string        `json:"overall_experience,omitempty" validate:"omitempty,min=1"`
}

func (r *UpdateReviewRequest) IsEmpty() bool {
	return r.Rounds == nil && r.OverallExperience == nil
}

// ToRoundModels превращает этапы в строки review_rounds в порядке запроса
func ToRoundModels(rounds []RoundRequest) []models.ReviewRound {
	out := make([]models.ReviewRound, 0, len(rounds))
	for i, r := range rounds {
		out = append(out, models.ReviewRound{
			Position:    i,
			RoundNumber: r.RoundNumber,
			Experience:  r.Experience,
		})
	}
	return out
}

// ======================
// Response DTOs
// ======================

type RoundResponse struct {
	RoundNumber int    `json:"round_number"`
	Experience  string `json:"experience"`
}

type ReviewResponse struct {
	ID                string          `json:"id"`
	JobID             string          `json:"job_id"`
	Rounds            []RoundResponse `json:"rounds"`
	OverallExperience string          `json:"overall_experience"`
	PostedBy          string          `json:"posted_by"`
	Poster            *PosterInfo     `json:"poster,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func NewReviewResponse(r *models.Review) *ReviewResponse {
	rounds := make([]RoundResponse, 0, len(r.Rounds))
	for _, round := range r.Rounds {
		rounds = append(rounds, RoundResponse{RoundNumber: round.RoundNumber, Experience: round.Experience})
	}
	return &ReviewResponse{
		ID:                r.ID,
		JobID:             r.JobID,
		Rounds:            rounds,
		OverallExperience: r.OverallExperience,
		PostedBy:          r.PostedBy,
		Poster:            newPosterInfo(r.Poster),
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func NewReviewListResponse(reviews []models.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for i := range reviews {
		out = append(out, NewReviewResponse(&reviews[i]))
	}
	return out
}
