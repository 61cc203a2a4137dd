package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"campushire_backend/internal/auth"
	"campushire_backend/internal/middleware"
	"campushire_backend/internal/services"
	"campushire_backend/internal/services/dto"
	"campushire_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// companyImageField - имя поля файла в multipart форме
const companyImageField = "companyImage"

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	jobs := rg.Group("/jobs")
	{
		// Публичное чтение
		jobs.GET("/college/:college", h.ListCollegeJobs)
		jobs.GET("/:id", h.GetJob)

		jobs.GET("/my", authMW, middleware.RequireCapability(auth.JobholderOnly), h.ListMyJobs)
		jobs.POST("", authMW, middleware.RequireCapability(auth.JobholderOnly), h.CreateJob)
		jobs.PUT("/:id", authMW, h.UpdateJob)
		jobs.DELETE("/:id", authMW, h.DeleteJob)
	}
}

// CreateJob принимает JSON или multipart с необязательным файлом companyImage
func (h *JobHandler) CreateJob(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	image, ok := h.optionalImage(c)
	if !ok {
		return
	}

	job, err := h.jobService.CreateJob(c.Request.Context(), h.GetDB(c), identity, &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ListCollegeJobs(c *gin.Context) {
	var query dto.ListJobsQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.ListCollegeJobs(c.Request.Context(), h.GetDB(c), c.Param("college"), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) ListMyJobs(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	jobs, err := h.jobService.ListMyJobs(c.Request.Context(), h.GetDB(c), identity)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJob: JSON с неизвестными полями отклоняется (400)
func (h *JobHandler) UpdateJob(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateJobRequest
	if isMultipart(c) {
		if !h.BindAndValidate_JSON(c, &req) {
			return
		}
	} else if !h.BindAndValidate_StrictJSON(c, &req) {
		return
	}

	image, ok := h.optionalImage(c)
	if !ok {
		return
	}

	job, err := h.jobService.UpdateJob(c.Request.Context(), h.GetDB(c), identity, c.Param("id"), &req, image)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	if err := h.jobService.DeleteJob(c.Request.Context(), h.GetDB(c), identity, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// optionalImage достает файл из формы; его отсутствие не ошибка
func (h *JobHandler) optionalImage(c *gin.Context) (*multipart.FileHeader, bool) {
	if !isMultipart(c) {
		return nil, true
	}

	file, err := c.FormFile(companyImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, true
		}
		h.HandleServiceError(c, apperrors.NewBadRequestError("Invalid company image: "+err.Error()))
		return nil, false
	}
	return file, true
}
