package repositories

import (
	"errors"

	"campushire_backend/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	// Create сохраняет отзыв вместе с этапами
	Create(db *gorm.DB, review *models.Review) error
	FindByID(db *gorm.DB, id string) (*models.Review, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Review, error)

	// UpdateOwned обновляет поля отзыва; если rounds != nil, этапы
	// заменяются целиком. Вызывать внутри транзакции.
	UpdateOwned(db *gorm.DB, id, ownerID string, updates map[string]interface{}, rounds []models.ReviewRound) error
	DeleteOwned(db *gorm.DB, id, ownerID string) error
	DeleteByJob(db *gorm.DB, jobID string) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func orderedRounds(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.Preload("Rounds", orderedRounds).Preload("Poster").
		First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Preload("Rounds", orderedRounds).Preload("Poster").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) UpdateOwned(db *gorm.DB, id, ownerID string, updates map[string]interface{}, rounds []models.ReviewRound) error {
	scoped := db.Model(&models.Review{}).Where("id = ? AND posted_by = ?", id, ownerID)

	// updated_at трогаем всегда, чтобы RowsAffected отражал наличие строки
	var result *gorm.DB
	if len(updates) == 0 {
		result = scoped.Update("updated_at", db.NowFunc())
	} else {
		result = scoped.Updates(updates)
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}

	if rounds == nil {
		return nil
	}

	if err := db.Where("review_id = ?", id).Delete(&models.ReviewRound{}).Error; err != nil {
		return err
	}
	for i := range rounds {
		rounds[i].ID = 0
		rounds[i].ReviewID = id
	}
	return db.Create(&rounds).Error
}

func (r *ReviewRepositoryImpl) DeleteOwned(db *gorm.DB, id, ownerID string) error {
	result := db.Where("id = ? AND posted_by = ?", id, ownerID).Delete(&models.Review{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return db.Where("review_id = ?", id).Delete(&models.ReviewRound{}).Error
}

func (r *ReviewRepositoryImpl) DeleteByJob(db *gorm.DB, jobID string) error {
	sub := db.Model(&models.Review{}).Select("id").Where("job_id = ?", jobID)
	if err := db.Where("review_id IN (?)", sub).Delete(&models.ReviewRound{}).Error; err != nil {
		return err
	}
	return db.Where("job_id = ?", jobID).Delete(&models.Review{}).Error
}
