package repositories

import (
	"errors"

	"campushire_backend/internal/models"

	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(db *gorm.DB, question *models.Question) error
	FindByID(db *gorm.DB, id string) (*models.Question, error)
	FindByJob(db *gorm.DB, jobID string) ([]models.Question, error)
	UpdateOwned(db *gorm.DB, id, ownerID string, updates map[string]interface{}) error
	DeleteOwned(db *gorm.DB, id, ownerID string) error
	DeleteByJob(db *gorm.DB, jobID string) error
}

type QuestionRepositoryImpl struct{}

func NewQuestionRepository() QuestionRepository {
	return &QuestionRepositoryImpl{}
}

func (r *QuestionRepositoryImpl) Create(db *gorm.DB, question *models.Question) error {
	return db.Create(question).Error
}

func (r *QuestionRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Question, error) {
	var question models.Question
	if err := db.Preload("Poster").First(&question, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepositoryImpl) FindByJob(db *gorm.DB, jobID string) ([]models.Question, error) {
	var questions []models.Question
	err := db.Preload("Poster").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepositoryImpl) UpdateOwned(db *gorm.DB, id, ownerID string, updates map[string]interface{}) error {
	result := db.Model(&models.Question{}).
		Where("id = ? AND posted_by = ?", id, ownerID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepositoryImpl) DeleteOwned(db *gorm.DB, id, ownerID string) error {
	result := db.Where("id = ? AND posted_by = ?", id, ownerID).Delete(&models.Question{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *QuestionRepositoryImpl) DeleteByJob(db *gorm.DB, jobID string) error {
	return db.Where("job_id = ?", jobID).Delete(&models.Question{}).Error
}
