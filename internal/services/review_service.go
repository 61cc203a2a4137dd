package services

import (
	"context"
	"errors"

	"campushire_backend/internal/auth"
	"campushire_backend/internal/logger"
	"campushire_backend/internal/models"
	"campushire_backend/internal/repositories"
	"campushire_backend/internal/services/dto"
	"campushire_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(ctx context.Context, db *gorm.DB, caller *auth.Identity, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListJobReviews(ctx context.Context, db *gorm.DB, jobID string) ([]*dto.ReviewResponse, error)
	GetReview(ctx context.Context, db *gorm.DB, reviewID string) (*dto.ReviewResponse, error)
	UpdateReview(ctx context.Context, db *gorm.DB, caller *auth.Identity, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, db *gorm.DB, caller *auth.Identity, reviewID string) error
}

type ReviewServiceImpl struct {
	reviewRepo repositories.ReviewRepository
	jobRepo    repositories.JobRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository, jobRepo repositories.JobRepository) ReviewService {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		jobRepo:    jobRepo,
	}
}

func (s *ReviewServiceImpl) CreateReview(ctx context.Context, db *gorm.DB, caller *auth.Identity, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	if len(req.Rounds) == 0 {
		return nil, apperrors.ValidationError(map[string]string{"rounds": "At least one round is required"})
	}
	if err := requireCollegeJob(db, s.jobRepo, caller, req.JobID); err != nil {
		return nil, err
	}

	review := &models.Review{
		JobID:             req.JobID,
		OverallExperience: req.OverallExperience,
		PostedBy:          caller.UserID,
		Rounds:            dto.ToRoundModels(req.Rounds),
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "review created", "review_id", review.ID, "job_id", review.JobID, "rounds", len(review.Rounds))
	return s.GetReview(ctx, db, review.ID)
}

func (s *ReviewServiceImpl) ListJobReviews(ctx context.Context, db *gorm.DB, jobID string) ([]*dto.ReviewResponse, error) {
	reviews, err := s.reviewRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReviewListResponse(reviews), nil
}

func (s *ReviewServiceImpl) GetReview(ctx context.Context, db *gorm.DB, reviewID string) (*dto.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		return nil, mapReviewError(err)
	}
	return dto.NewReviewResponse(review), nil
}

// UpdateReview: присланные rounds полностью заменяют старые
func (s *ReviewServiceImpl) UpdateReview(ctx context.Context, db *gorm.DB, caller *auth.Identity, reviewID string, req *dto.UpdateReviewRequest) (*dto.ReviewResponse, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}
	if req.Rounds != nil && len(req.Rounds) == 0 {
		return nil, apperrors.ValidationError(map[string]string{"rounds": "At least one round is required"})
	}

	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		return nil, mapReviewError(err)
	}
	if !auth.CanMutate(caller, review.PostedBy, false) {
		return nil, apperrors.ErrOwnership("review")
	}

	updates := map[string]interface{}{}
	if req.OverallExperience != nil {
		updates["overall_experience"] = *req.OverallExperience
	}
	var rounds []models.ReviewRound
	if req.Rounds != nil {
		rounds = dto.ToRoundModels(req.Rounds)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.reviewRepo.UpdateOwned(tx, review.ID, caller.UserID, updates, rounds)
	})
	if err != nil {
		return nil, mapReviewError(err)
	}

	return s.GetReview(ctx, db, review.ID)
}

func (s *ReviewServiceImpl) DeleteReview(ctx context.Context, db *gorm.DB, caller *auth.Identity, reviewID string) error {
	review, err := s.reviewRepo.FindByID(db, reviewID)
	if err != nil {
		return mapReviewError(err)
	}
	if !auth.CanMutate(caller, review.PostedBy, false) {
		return apperrors.ErrOwnership("review")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return s.reviewRepo.DeleteOwned(tx, review.ID, caller.UserID)
	})
	if err != nil {
		return mapReviewError(err)
	}

	logger.CtxInfo(ctx, "review deleted", "review_id", review.ID)
	return nil
}

func mapReviewError(err error) error {
	if errors.Is(err, repositories.ErrReviewNotFound) {
		return apperrors.ErrReviewNotFound
	}
	return apperrors.InternalError(err)
}
