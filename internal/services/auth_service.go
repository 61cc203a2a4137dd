package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"campushire_backend/internal/auth"
	"campushire_backend/internal/logger"
	"campushire_backend/internal/models"
	"campushire_backend/internal/repositories"
	"campushire_backend/internal/services/dto"
	"campushire_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Me(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
	tokens   *auth.TokenService
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService) AuthService {
	return &AuthServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register создает student или jobholder и сразу выдает токен.
// Админы через регистрацию не создаются.
func (s *AuthServiceImpl) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	role := models.UserRole(req.Role).Normalize()
	if !role.Registrable() {
		return nil, apperrors.ErrInvalidUserRole
	}
	// без колледжа пользователь не попадет ни в одну ленту
	if strings.TrimSpace(req.College) == "" {
		return nil, apperrors.ValidationError(map[string]string{"college": "This field is required"})
	}

	hash, err := auth.HashPassword(req.Password)
	switch {
	case errors.Is(err, auth.ErrPasswordTooShort):
		return nil, apperrors.ValidationError(map[string]string{"password": fmt.Sprintf("Must be at least %d characters long", auth.MinPasswordLength)})
	case errors.Is(err, auth.ErrPasswordTooLong):
		return nil, apperrors.ValidationError(map[string]string{"password": fmt.Sprintf("Must be at most %d", auth.MaxPasswordLength)})
	case err != nil:
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     strings.TrimSpace(req.Username),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         role,
		College:      strings.TrimSpace(req.College),
	}

	if err := s.userRepo.Create(db, user); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailTaken):
			return nil, apperrors.ErrDuplicateIdentity("email")
		case errors.Is(err, repositories.ErrUsernameTaken):
			return nil, apperrors.ErrDuplicateIdentity("username")
		case errors.Is(err, repositories.ErrUserAlreadyExists):
			return nil, apperrors.New(apperrors.CodeAlreadyExists, "auth", "User already exists", http.StatusConflict)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role, "college", user.College)
	return s.authResponse(user)
}

// Login: неизвестный email и неверный пароль неотличимы для клиента
func (s *AuthServiceImpl) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		logger.CtxWarn(ctx, "login failed: wrong password", "user_id", user.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.authResponse(user)
}

func (s *AuthServiceImpl) Me(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapUserError(err)
	}
	return dto.NewUserResponse(user), nil
}

func (s *AuthServiceImpl) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.Issue(auth.Identity{
		UserID:   user.ID,
		Role:     user.Role,
		College:  user.College,
		Username: user.Username,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func mapUserError(err error) error {
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrUserNotFound
	}
	return apperrors.InternalError(err)
}
