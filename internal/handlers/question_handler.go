package handlers

import (
	"net/http"

	"campushire_backend/internal/auth"
	"campushire_backend/internal/middleware"
	"campushire_backend/internal/services"
	"campushire_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	*BaseHandler
	questionService services.QuestionService
}

func NewQuestionHandler(base *BaseHandler, questionService services.QuestionService) *QuestionHandler {
	return &QuestionHandler{
		BaseHandler:     base,
		questionService: questionService,
	}
}

func (h *QuestionHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	questions := rg.Group("/questions")
	{
		questions.GET("/job/:jobId", h.ListJobQuestions)
		questions.GET("/:id", h.GetQuestion)

		questions.POST("", authMW, middleware.RequireCapability(auth.JobholderOnly), h.CreateQuestion)
		questions.PUT("/:id", authMW, h.UpdateQuestion)
		questions.DELETE("/:id", authMW, h.DeleteQuestion)
	}
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	question, err := h.questionService.CreateQuestion(c.Request.Context(), h.GetDB(c), identity, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) ListJobQuestions(c *gin.Context) {
	questions, err := h.questionService.ListJobQuestions(c.Request.Context(), h.GetDB(c), c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, questions)
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	question, err := h.questionService.GetQuestion(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateQuestionRequest
	if !h.BindAndValidate_StrictJSON(c, &req) {
		return
	}

	question, err := h.questionService.UpdateQuestion(c.Request.Context(), h.GetDB(c), identity, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	if err := h.questionService.DeleteQuestion(c.Request.Context(), h.GetDB(c), identity, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Question deleted successfully"})
}
