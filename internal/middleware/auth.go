package middleware

import (
	"strings"

	"campushire_backend/internal/auth"
	"campushire_backend/internal/logger"
	"campushire_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Ключи gin.Context, которые выставляет AuthMiddleware
const (
	IdentityKey = "identity"
	UserIDKey   = "userID"
	RoleKey     = "role"
	CollegeKey  = "college"
)

// AuthMiddleware - middleware проверки JWT. В БД не ходит.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			logger.CtxWarn(c.Request.Context(), "missing bearer token", "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		identity, err := tokens.Verify(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "token rejected", "path", c.Request.URL.Path, "error", err.Error())
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(IdentityKey, identity)
		c.Set(UserIDKey, identity.UserID)
		c.Set(RoleKey, identity.Role)
		c.Set(CollegeKey, identity.College)

		ctx := auth.WithIdentity(c.Request.Context(), identity)
		ctx = logger.WithUserID(ctx, identity.UserID)
		ctx = logger.WithCollege(ctx, identity.College)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireCapability пропускает запрос, только если у личности есть возможность cap.
// Ставится после AuthMiddleware.
func RequireCapability(capability auth.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := GetIdentity(c)
		if identity == nil {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
			return
		}

		if !capability.Allows(identity) {
			logger.CtxWarn(c.Request.Context(), "access denied",
				"capability", capability.String(),
				"role", string(identity.Role),
				"path", c.Request.URL.Path,
			)
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			return
		}

		c.Next()
	}
}

// AdminMiddleware - 403 для всех, кроме админа
func AdminMiddleware() gin.HandlerFunc {
	return RequireCapability(auth.AdminOnly)
}

// GetIdentity извлекает личность из контекста; nil для анонимного запроса
func GetIdentity(c *gin.Context) *auth.Identity {
	val, exists := c.Get(IdentityKey)
	if !exists {
		return nil
	}
	identity, _ := val.(*auth.Identity)
	return identity
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}

	return id
}
