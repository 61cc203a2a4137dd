package repositories

import (
	"errors"

	"campushire_backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	ExistsByEmail(db *gorm.DB, email string) (bool, error)
	ExistsByUsername(db *gorm.DB, username string) (bool, error)

	// Admin operations
	SetVerified(db *gorm.DB, userID string, verified bool, verifiedBy *string) error
	FindJobholders(db *gorm.DB, verified bool) ([]models.User, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

// Create сначала проверяет email, потом username. Гонку двух
// одновременных регистраций закрывает unique индекс.
func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	taken, err := r.ExistsByEmail(db, user.Email)
	if err != nil {
		return err
	}
	if taken {
		return ErrEmailTaken
	}

	taken, err = r.ExistsByUsername(db, user.Username)
	if err != nil {
		return err
	}
	if taken {
		return ErrUsernameTaken
	}

	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) ExistsByUsername(db *gorm.DB, username string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// SetVerified выставляет флаг. При снятии верификации verified_by очищается.
func (r *UserRepositoryImpl) SetVerified(db *gorm.DB, userID string, verified bool, verifiedBy *string) error {
	if !verified {
		verifiedBy = nil
	}

	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"is_verified": verified,
		"verified_by": verifiedBy,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindJobholders(db *gorm.DB, verified bool) ([]models.User, error) {
	var users []models.User
	err := db.Where("role = ? AND is_verified = ?", models.UserRoleJobholder, verified).
		Order("created_at DESC").
		Find(&users).Error
	return users, err
}
