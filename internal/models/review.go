package models

type Review struct {
	BaseModel
	JobID             string `gorm:"type:varchar(36);not null;index"`
	OverallExperience string `gorm:"type:text;not null"`
	PostedBy          string `gorm:"type:varchar(36);not null;index"`

	Rounds []ReviewRound `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE"`
	Poster *User         `gorm:"foreignKey:PostedBy"`
}

// ReviewRound - один этап собеседования. Position хранит порядок,
// в котором этапы прислали; RoundNumber задает клиент и не проверяется
// на уникальность.
type ReviewRound struct {
	ID          uint   `gorm:"primaryKey"`
	ReviewID    string `gorm:"type:varchar(36);not null;index"`
	Position    int    `gorm:"not null"`
	RoundNumber int    `gorm:"not null"`
	Experience  string `gorm:"type:text;not null"`
}
