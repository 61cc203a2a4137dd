package repositories

import (
	"errors"

	"campushire_backend/internal/models"

	"gorm.io/gorm"
)

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	FindByCollege(db *gorm.DB, college string) ([]models.Job, error)
	FindByPoster(db *gorm.DB, userID string) ([]models.Job, error)

	// Owned-операции включают posted_by в WHERE. ErrJobNotFound означает,
	// что строки с таким id и владельцем нет.
	UpdateOwned(db *gorm.DB, id, ownerID string, updates map[string]interface{}) error
	DeleteOwned(db *gorm.DB, id, ownerID string) error

	// DeleteByID - удаление без проверки владельца (для админа)
	DeleteByID(db *gorm.DB, id string) error

	// ImageKeys - все ключи логотипов, на которые ссылаются вакансии
	ImageKeys(db *gorm.DB) ([]string, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.Preload("Poster").First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) FindByCollege(db *gorm.DB, college string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Poster").
		Where("college = ?", college).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) FindByPoster(db *gorm.DB, userID string) ([]models.Job, error) {
	var jobs []models.Job
	err := db.Preload("Poster").
		Where("posted_by = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) UpdateOwned(db *gorm.DB, id, ownerID string, updates map[string]interface{}) error {
	result := db.Model(&models.Job{}).
		Where("id = ? AND posted_by = ?", id, ownerID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DeleteOwned(db *gorm.DB, id, ownerID string) error {
	result := db.Where("id = ? AND posted_by = ?", id, ownerID).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) DeleteByID(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Job{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) ImageKeys(db *gorm.DB) ([]string, error) {
	var keys []string
	err := db.Model(&models.Job{}).
		Where("company_image IS NOT NULL AND company_image <> ''").
		Pluck("company_image", &keys).Error
	return keys, err
}
