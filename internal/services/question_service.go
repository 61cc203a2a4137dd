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

type QuestionService interface {
	CreateQuestion(ctx context.Context, db *gorm.DB, caller *auth.Identity, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	ListJobQuestions(ctx context.Context, db *gorm.DB, jobID string) ([]*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, db *gorm.DB, questionID string) (*dto.QuestionResponse, error)
	UpdateQuestion(ctx context.Context, db *gorm.DB, caller *auth.Identity, questionID string, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, db *gorm.DB, caller *auth.Identity, questionID string) error
}

type QuestionServiceImpl struct {
	questionRepo repositories.QuestionRepository
	jobRepo      repositories.JobRepository
}

func NewQuestionService(questionRepo repositories.QuestionRepository, jobRepo repositories.JobRepository) QuestionService {
	return &QuestionServiceImpl{
		questionRepo: questionRepo,
		jobRepo:      jobRepo,
	}
}

func (s *QuestionServiceImpl) CreateQuestion(ctx context.Context, db *gorm.DB, caller *auth.Identity, req *dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if err := requireCollegeJob(db, s.jobRepo, caller, req.JobID); err != nil {
		return nil, err
	}

	question := &models.Question{
		JobID:    req.JobID,
		Type:     models.QuestionType(req.Type),
		Question: req.Question,
		Answer:   req.Answer,
		PostedBy: caller.UserID,
	}
	if err := s.questionRepo.Create(db, question); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "question created", "question_id", question.ID, "job_id", question.JobID)
	return s.GetQuestion(ctx, db, question.ID)
}

// ListJobQuestions: для неизвестной вакансии возвращает пустой список
func (s *QuestionServiceImpl) ListJobQuestions(ctx context.Context, db *gorm.DB, jobID string) ([]*dto.QuestionResponse, error) {
	questions, err := s.questionRepo.FindByJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewQuestionListResponse(questions), nil
}

func (s *QuestionServiceImpl) GetQuestion(ctx context.Context, db *gorm.DB, questionID string) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.FindByID(db, questionID)
	if err != nil {
		return nil, mapQuestionError(err)
	}
	return dto.NewQuestionResponse(question), nil
}

func (s *QuestionServiceImpl) UpdateQuestion(ctx context.Context, db *gorm.DB, caller *auth.Identity, questionID string, req *dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	question, err := s.questionRepo.FindByID(db, questionID)
	if err != nil {
		return nil, mapQuestionError(err)
	}
	if !auth.CanMutate(caller, question.PostedBy, false) {
		return nil, apperrors.ErrOwnership("question")
	}

	updates := map[string]interface{}{}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Question != nil {
		updates["question"] = *req.Question
	}
	if req.Answer != nil {
		updates["answer"] = *req.Answer
	}

	if err := s.questionRepo.UpdateOwned(db, question.ID, caller.UserID, updates); err != nil {
		return nil, mapQuestionError(err)
	}
	return s.GetQuestion(ctx, db, question.ID)
}

func (s *QuestionServiceImpl) DeleteQuestion(ctx context.Context, db *gorm.DB, caller *auth.Identity, questionID string) error {
	question, err := s.questionRepo.FindByID(db, questionID)
	if err != nil {
		return mapQuestionError(err)
	}
	if !auth.CanMutate(caller, question.PostedBy, false) {
		return apperrors.ErrOwnership("question")
	}

	if err := s.questionRepo.DeleteOwned(db, question.ID, caller.UserID); err != nil {
		return mapQuestionError(err)
	}

	logger.CtxInfo(ctx, "question deleted", "question_id", question.ID)
	return nil
}

func mapQuestionError(err error) error {
	if errors.Is(err, repositories.ErrQuestionNotFound) {
		return apperrors.ErrQuestionNotFound
	}
	return apperrors.InternalError(err)
}
