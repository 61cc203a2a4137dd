package dto

import (
	"time"

	"campushire_backend/internal/models"
)

// ======================
// Request DTOs
// ======================

// CreateJobRequest принимается и как JSON, и как multipart форма
// (в форме рядом идет файл companyImage).
type CreateJobRequest struct {
	CompanyName   string `json:"company_name" form:"company_name" validate:"required,max=255"`
	Role          string `json:"role" form:"role" validate:"required,max=255"`
	Salary        string `json:"salary" form:"salary" validate:"required,max=64,decimal"`
	Description   string `json:"description" form:"description" validate:"required"`
	YearOfJoining int    `json:"year_of_joining" form:"year_of_joining" validate:"required,join-year"`
}

// UpdateJobRequest - только явно перечисленные поля.
// college и posted_by изменить нельзя.
type UpdateJobRequest struct {
	CompanyName   *string `json:"company_name,omitempty" form:"company_name" validate:"omitempty,min=1,max=255"`
	Role          *string `json:"role,omitempty" form:"role" validate:"omitempty,min=1,max=255"`
	Salary        *string `json:"salary,omitempty" form:"salary" validate:"omitempty,min=1,max=64,decimal"`
	Description   *string `json:"description,omitempty" form:"description" validate:"omitempty,min=1"`
	YearOfJoining *int    `json:"year_of_joining,omitempty" form:"year_of_joining" validate:"omitempty,join-year"`
}

// IsEmpty - в запросе нет ни одного поля для изменения
func (r *UpdateJobRequest) IsEmpty() bool {
	return r.CompanyName == nil && r.Role == nil && r.Salary == nil &&
		r.Description == nil && r.YearOfJoining == nil
}

// ListJobsQuery - параметры фильтра ленты колледжа
type ListJobsQuery struct {
	Keyword   string `form:"keyword" validate:"omitempty,max=255"`
	MinSalary string `form:"min_salary"`
	Year      string `form:"year"`
	SortBy    string `form:"sort_by"`
}

// ======================
// Response DTOs
// ======================

type JobResponse struct {
	ID            string      `json:"id"`
	CompanyName   string      `json:"company_name"`
	Role          string      `json:"role"`
	Salary        string      `json:"salary"`
	Description   string      `json:"description"`
	YearOfJoining int         `json:"year_of_joining"`
	CompanyImage  *string     `json:"company_image,omitempty"`
	College       string      `json:"college"`
	PostedBy      string      `json:"posted_by"`
	Poster        *PosterInfo `json:"poster,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// NewJobResponse собирает ответ. imageURL - публичный адрес картинки,
// если она есть.
func NewJobResponse(j *models.Job, imageURL *string) *JobResponse {
	return &JobResponse{
		ID:            j.ID,
		CompanyName:   j.CompanyName,
		Role:          j.Role,
		Salary:        j.Salary,
		Description:   j.Description,
		YearOfJoining: j.YearOfJoining,
		CompanyImage:  imageURL,
		College:       j.College,
		PostedBy:      j.PostedBy,
		Poster:        newPosterInfo(j.Poster),
		CreatedAt:     j.CreatedAt,
		UpdatedAt:     j.UpdatedAt,
	}
}

type JobListResponse struct {
	Jobs  []*JobResponse `json:"jobs"`
	Total int            `json:"total"`
}
