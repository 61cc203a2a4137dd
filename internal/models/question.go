package models

type Question struct {
	BaseModel
	JobID    string       `gorm:"type:varchar(36);not null;index"`
	Type     QuestionType `gorm:"type:varchar(20);not null"`
	Question string       `gorm:"type:text;not null"`
	Answer   string       `gorm:"type:text"`
	PostedBy string       `gorm:"type:varchar(36);not null;index"`

	Poster *User `gorm:"foreignKey:PostedBy"`
}
