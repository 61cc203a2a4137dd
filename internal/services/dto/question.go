package dto

import (
	"time"

	"campushire_backend/internal/models"
)

type CreateQuestionRequest struct {
	JobID    string `json:"job_id" validate:"required"`
	Type     string `json:"type" validate:"required,is-question-type"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"`
}

type UpdateQuestionRequest struct {
	Type     *string `json:"type,omitempty" validate:"omitempty,is-question-type"`
	Question *string `json:"question,omitempty" validate:"omitempty,min=1"`
	Answer   *string `json:"answer,omitempty"`
}

func (r *UpdateQuestionRequest) IsEmpty() bool {
	return r.Type == nil && r.Question == nil && r.Answer == nil
}

type QuestionResponse struct {
	ID        string      `json:"id"`
	JobID     string      `json:"job_id"`
	Type      string      `json:"type"`
	Question  string      `json:"question"`
	Answer    string      `json:"answer"`
	PostedBy  string      `json:"posted_by"`
	Poster    *PosterInfo `json:"poster,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func NewQuestionResponse(q *models.Question) *QuestionResponse {
	return &QuestionResponse{
		ID:        q.ID,
		JobID:     q.JobID,
		Type:      string(q.Type),
		Question:  q.Question,
		Answer:    q.Answer,
		PostedBy:  q.PostedBy,
		Poster:    newPosterInfo(q.Poster),
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
}

func NewQuestionListResponse(questions []models.Question) []*QuestionResponse {
	out := make([]*QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, NewQuestionResponse(&questions[i]))
	}
	return out
}
