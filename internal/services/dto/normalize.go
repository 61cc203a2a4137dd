package dto

import "strings"

// Normalize вызывается валидатором до проверки тегов, поэтому строка
// из одних пробелов не проходит required/min.

func (r *RegisterRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	r.College = strings.TrimSpace(r.College)
	r.Role = strings.TrimSpace(r.Role)
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
}

func (r *CreateJobRequest) Normalize() {
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Role = strings.TrimSpace(r.Role)
	r.Salary = strings.TrimSpace(r.Salary)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *UpdateJobRequest) Normalize() {
	trimPtr(r.CompanyName)
	trimPtr(r.Role)
	trimPtr(r.Salary)
	trimPtr(r.Description)
}

func (r *CreateQuestionRequest) Normalize() {
	r.JobID = strings.TrimSpace(r.JobID)
	r.Type = strings.TrimSpace(r.Type)
	r.Question = strings.TrimSpace(r.Question)
	r.Answer = strings.TrimSpace(r.Answer)
}

func (r *UpdateQuestionRequest) Normalize() {
	trimPtr(r.Type)
	trimPtr(r.Question)
	trimPtr(r.Answer)
}

func (r *CreateReviewRequest) Normalize() {
	r.JobID = strings.TrimSpace(r.JobID)
	r.OverallExperience = strings.TrimSpace(r.OverallExperience)
	trimRounds(r.Rounds)
}

func (r *UpdateReviewRequest) Normalize() {
	trimPtr(r.OverallExperience)
	trimRounds(r.Rounds)
}

func trimPtr(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}

func trimRounds(rounds []RoundRequest) {
	for i := range rounds {
		rounds[i].Experience = strings.TrimSpace(rounds[i].Experience)
	}
}
