package services

import (
	"context"

	"campushire_backend/internal/auth"
	"campushire_backend/internal/logger"
	"campushire_backend/internal/models"
	"campushire_backend/internal/repositories"
	"campushire_backend/internal/services/dto"
	"campushire_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// UserService - админские операции над пользователями
type UserService interface {
	ListPendingJobholders(ctx context.Context, db *gorm.DB) ([]*dto.UserResponse, error)
	ListVerifiedJobholders(ctx context.Context, db *gorm.DB) ([]*dto.UserResponse, error)
	SetVerified(ctx context.Context, db *gorm.DB, admin *auth.Identity, userID string, verified bool) (*dto.UserResponse, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
	emails   *EmailService
}

func NewUserService(userRepo repositories.UserRepository, emails *EmailService) UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		emails:   emails,
	}
}

func (s *UserServiceImpl) ListPendingJobholders(ctx context.Context, db *gorm.DB) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindJobholders(db, false)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserListResponse(users), nil
}

func (s *UserServiceImpl) ListVerifiedJobholders(ctx context.Context, db *gorm.DB) ([]*dto.UserResponse, error) {
	users, err := s.userRepo.FindJobholders(db, true)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserListResponse(users), nil
}

// SetVerified идемпотентен. Письмо уходит только при переходе jobholder'а
// из неверифицированного состояния в верифицированное.
func (s *UserServiceImpl) SetVerified(ctx context.Context, db *gorm.DB, admin *auth.Identity, userID string, verified bool) (*dto.UserResponse, error) {
	if !auth.AdminOnly.Allows(admin) {
		return nil, apperrors.ErrInsufficientPermissions
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapUserError(err)
	}
	wasVerified := user.IsVerified

	if err := s.userRepo.SetVerified(db, userID, verified, &admin.UserID); err != nil {
		return nil, mapUserError(err)
	}

	user, err = s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	logger.CtxInfo(ctx, "user verification changed",
		"user_id", userID,
		"verified", verified,
		"admin_id", admin.UserID,
	)

	if verified && !wasVerified && user.Role == models.UserRoleJobholder {
		s.emails.NotifyJobholderVerified(ctx, *user)
	}

	return dto.NewUserResponse(user), nil
}
