package handlers

import (
	"net/http"

	"campushire_backend/internal/middleware"
	"campushire_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewAdminHandler(base *BaseHandler, userService services.UserService) *AdminHandler {
	return &AdminHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	admin := rg.Group("/admin")
	admin.Use(authMW)
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/pending-requests", h.ListPendingJobholders)
		admin.GET("/verified-jobholders", h.ListVerifiedJobholders)
		admin.POST("/verify-jobholder/:userId", h.VerifyJobholder)
		admin.POST("/remove-verification/:userId", h.RemoveVerification)
	}
}

func (h *AdminHandler) ListPendingJobholders(c *gin.Context) {
	users, err := h.userService.ListPendingJobholders(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) ListVerifiedJobholders(c *gin.Context) {
	users, err := h.userService.ListVerifiedJobholders(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *AdminHandler) VerifyJobholder(c *gin.Context) {
	h.setVerified(c, true, "Jobholder verified")
}

func (h *AdminHandler) RemoveVerification(c *gin.Context) {
	h.setVerified(c, false, "Verification removed successfully")
}

func (h *AdminHandler) setVerified(c *gin.Context, verified bool, message string) {
	identity, ok := h.GetIdentity(c)
	if !ok {
		return
	}

	user, err := h.userService.SetVerified(c.Request.Context(), h.GetDB(c), identity, c.Param("userId"), verified)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"user":    user,
	})
}
