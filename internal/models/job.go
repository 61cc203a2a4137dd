package models

const MinYearOfJoining = 2000

type Job struct {
	BaseModel
	CompanyName   string  `gorm:"type:varchar(255);not null"`
	Role          string  `gorm:"type:varchar(255);not null"`
	Salary        string  `gorm:"type:varchar(64);not null"`
	Description   string  `gorm:"type:text;not null"`
	YearOfJoining int     `gorm:"not null;index"`
	CompanyImage  *string `gorm:"type:varchar(512)"`
	College       string  `gorm:"type:varchar(255);not null;index"`
	PostedBy      string  `gorm:"type:varchar(36);not null;index"`

	Poster *User `gorm:"foreignKey:PostedBy"`
}
