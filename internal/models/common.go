package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel - общие поля. ID генерируется в приложении, а не в БД,
// чтобы одна схема работала на postgres, mysql и sqlite.
type BaseModel struct {
	ID        string    `gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// All возвращает все модели для AutoMigrate
func All() []interface{} {
	return []interface{}{
		&User{},
		&Job{},
		&Question{},
		&Review{},
		&ReviewRound{},
	}
}
