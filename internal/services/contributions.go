package services

import (
	"campushire_backend/internal/auth"
	"campushire_backend/internal/repositories"
	"campushire_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// requireCollegeJob: вопросы и отзывы может оставлять только jobholder,
// и только к вакансии своего колледжа.
func requireCollegeJob(db *gorm.DB, jobRepo repositories.JobRepository, caller *auth.Identity, jobID string) error {
	if !auth.JobholderOnly.Allows(caller) {
		return apperrors.ErrInsufficientPermissions
	}

	job, err := jobRepo.FindByID(db, jobID)
	if err != nil {
		return mapJobError(err)
	}
	if job.College != caller.College {
		return apperrors.ErrCollegeMismatch
	}
	return nil
}
