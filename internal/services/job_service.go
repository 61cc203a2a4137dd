package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"campushire_backend/internal/auth"
	"campushire_backend/internal/cache"
	"campushire_backend/internal/listing"
	"campushire_backend/internal/logger"
	"campushire_backend/internal/models"
	"campushire_backend/internal/repositories"
	"campushire_backend/internal/services/dto"
	"campushire_backend/internal/storage"
	"campushire_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(ctx context.Context, db *gorm.DB, caller *auth.Identity, req *dto.CreateJobRequest, image *multipart.FileHeader) (*dto.JobResponse, error)
	ListCollegeJobs(ctx context.Context, db *gorm.DB, college string, query *dto.ListJobsQuery) (*dto.JobListResponse, error)
	ListMyJobs(ctx context.Context, db *gorm.DB, caller *auth.Identity) (*dto.JobListResponse, error)
	GetJob(ctx context.Context, db *gorm.DB, jobID string) (*dto.JobResponse, error)
	UpdateJob(ctx context.Context, db *gorm.DB, caller *auth.Identity, jobID string, req *dto.UpdateJobRequest, image *multipart.FileHeader) (*dto.JobResponse, error)
	DeleteJob(ctx context.Context, db *gorm.DB, caller *auth.Identity, jobID string) error
}

type JobServiceImpl struct {
	jobRepo      repositories.JobRepository
	questionRepo repositories.QuestionRepository
	reviewRepo   repositories.ReviewRepository
	storage      storage.Storage
	cache        *cache.JobListCache
	upload       UploadConfig
}

func NewJobService(
	jobRepo repositories.JobRepository,
	questionRepo repositories.QuestionRepository,
	reviewRepo repositories.ReviewRepository,
	store storage.Storage,
	jobCache *cache.JobListCache,
	upload UploadConfig,
) JobService {
	return &JobServiceImpl{
		jobRepo:      jobRepo,
		questionRepo: questionRepo,
		reviewRepo:   reviewRepo,
		storage:      store,
		cache:        jobCache,
		upload:       upload,
	}
}

// CreateJob: колледж берется из токена, а не из тела запроса
func (s *JobServiceImpl) CreateJob(ctx context.Context, db *gorm.DB, caller *auth.Identity, req *dto.CreateJobRequest, image *multipart.FileHeader) (*dto.JobResponse, error) {
	if !auth.JobholderOnly.Allows(caller) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	job := &models.Job{
		CompanyName:   strings.TrimSpace(req.CompanyName),
		Role:          strings.TrimSpace(req.Role),
		Salary:        strings.TrimSpace(req.Salary),
		Description:   req.Description,
		YearOfJoining: req.YearOfJoining,
		College:       caller.College,
		PostedBy:      caller.UserID,
	}
	if blank := blankFields(map[string]string{"company_name": job.CompanyName, "role": job.Role}); blank != nil {
		return nil, apperrors.ValidationError(blank)
	}

	if image != nil {
		key, err := saveImage(ctx, s.storage, s.upload, image)
		if err != nil {
			return nil, err
		}
		job.CompanyImage = &key
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		removeImage(ctx, s.storage, job.CompanyImage)
		return nil, apperrors.InternalError(err)
	}

	s.cache.Invalidate(ctx, job.College)
	logger.CtxInfo(ctx, "job created", "job_id", job.ID, "college", job.College)

	return s.GetJob(ctx, db, job.ID)
}

// ListCollegeJobs - лента колледжа через фильтр/сортировку listing
func (s *JobServiceImpl) ListCollegeJobs(ctx context.Context, db *gorm.DB, college string, query *dto.ListJobsQuery) (*dto.JobListResponse, error) {
	if query == nil {
		query = &dto.ListJobsQuery{}
	}

	sortKey, err := listing.ParseSortKey(query.SortBy)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid sort_by: must be one of latest, salary-high, salary-low, year-new, year-old")
	}

	jobs, ok := s.cache.Get(ctx, college)
	if !ok {
		jobs, err = s.jobRepo.FindByCollege(db, college)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		s.cache.Set(ctx, college, jobs)
	}

	filtered := listing.Apply(jobs, listing.Query{
		Keyword:   query.Keyword,
		MinSalary: query.MinSalary,
		Year:      query.Year,
		SortBy:    sortKey,
	})

	return s.buildJobList(ctx, filtered), nil
}

func (s *JobServiceImpl) ListMyJobs(ctx context.Context, db *gorm.DB, caller *auth.Identity) (*dto.JobListResponse, error) {
	if !auth.JobholderOnly.Allows(caller) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	jobs, err := s.jobRepo.FindByPoster(db, caller.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.buildJobList(ctx, jobs), nil
}

func (s *JobServiceImpl) GetJob(ctx context.Context, db *gorm.DB, jobID string) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, mapJobError(err)
	}
	return dto.NewJobResponse(job, imageURL(ctx, s.storage, job.CompanyImage)), nil
}

// UpdateJob меняет только поля из UpdateJobRequest и, опционально, картинку.
func (s *JobServiceImpl) UpdateJob(ctx context.Context, db *gorm.DB, caller *auth.Identity, jobID string, req *dto.UpdateJobRequest, image *multipart.FileHeader) (*dto.JobResponse, error) {
	if req == nil {
		req = &dto.UpdateJobRequest{}
	}
	if req.IsEmpty() && image == nil {
		return nil, apperrors.NewBadRequestError("No fields to update")
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, mapJobError(err)
	}
	if !auth.CanMutate(caller, job.PostedBy, false) {
		return nil, apperrors.ErrOwnership("job")
	}

	updates := map[string]interface{}{}
	if req.CompanyName != nil {
		updates["company_name"] = strings.TrimSpace(*req.CompanyName)
	}
	if req.Role != nil {
		updates["role"] = strings.TrimSpace(*req.Role)
	}
	if req.Salary != nil {
		updates["salary"] = strings.TrimSpace(*req.Salary)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.YearOfJoining != nil {
		updates["year_of_joining"] = *req.YearOfJoining
	}
	if blank := blankUpdates(updates, "company_name", "role", "salary"); blank != nil {
		return nil, apperrors.ValidationError(blank)
	}

	var newImage *string
	if image != nil {
		key, err := saveImage(ctx, s.storage, s.upload, image)
		if err != nil {
			return nil, err
		}
		newImage = &key
		updates["company_image"] = key
	}

	if err := s.jobRepo.UpdateOwned(db, job.ID, caller.UserID, updates); err != nil {
		removeImage(ctx, s.storage, newImage)
		return nil, mapJobError(err)
	}

	if newImage != nil {
		removeImage(ctx, s.storage, job.CompanyImage)
	}
	s.cache.Invalidate(ctx, job.College)
	logger.CtxInfo(ctx, "job updated", "job_id", job.ID)

	return s.GetJob(ctx, db, job.ID)
}

// DeleteJob удаляет вакансию вместе с вопросами и отзывами.
// Админ может удалить любую вакансию.
func (s *JobServiceImpl) DeleteJob(ctx context.Context, db *gorm.DB, caller *auth.Identity, jobID string) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return mapJobError(err)
	}
	if !auth.CanMutate(caller, job.PostedBy, true) {
		return apperrors.ErrOwnership("job")
	}

	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.questionRepo.DeleteByJob(tx, job.ID); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.reviewRepo.DeleteByJob(tx, job.ID); err != nil {
		return apperrors.InternalError(err)
	}

	if auth.IsOwner(caller, job.PostedBy) {
		err = s.jobRepo.DeleteOwned(tx, job.ID, caller.UserID)
	} else {
		err = s.jobRepo.DeleteByID(tx, job.ID)
	}
	if err != nil {
		return mapJobError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return apperrors.InternalError(err)
	}

	removeImage(ctx, s.storage, job.CompanyImage)
	s.cache.Invalidate(ctx, job.College)
	logger.CtxInfo(ctx, "job deleted", "job_id", job.ID, "by", caller.UserID)

	return nil
}

func (s *JobServiceImpl) buildJobList(ctx context.Context, jobs []models.Job) *dto.JobListResponse {
	out := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		out = append(out, dto.NewJobResponse(&jobs[i], imageURL(ctx, s.storage, jobs[i].CompanyImage)))
	}
	return &dto.JobListResponse{Jobs: out, Total: len(out)}
}

func mapJobError(err error) error {
	if errors.Is(err, repositories.ErrJobNotFound) {
		return apperrors.ErrJobNotFound
	}
	return apperrors.InternalError(err)
}

// blankFields - поля, от которых после TrimSpace ничего не осталось
func blankFields(fields map[string]string) map[string]string {
	var out map[string]string
	for name, value := range fields {
		if value == "" {
			if out == nil {
				out = map[string]string{}
			}
			out[name] = "This field is required"
		}
	}
	return out
}

// blankUpdates проверяет только переданные поля
func blankUpdates(updates map[string]interface{}, names ...string) map[string]string {
	fields := map[string]string{}
	for _, name := range names {
		if v, ok := updates[name].(string); ok {
			fields[name] = v
		}
	}
	return blankFields(fields)
}
