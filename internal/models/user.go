package models

type User struct {
	BaseModel
	Username     string   `gorm:"type:varchar(64);uniqueIndex;not null"`
	Email        string   `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;index"`
	College      string   `gorm:"type:varchar(255);not null;index"`
	IsVerified   bool     `gorm:"default:false;index"`
	VerifiedBy   *string  `gorm:"type:varchar(36)"`
}
