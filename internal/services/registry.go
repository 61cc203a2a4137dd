package services

import (
	"campushire_backend/internal/auth"
	"campushire_backend/internal/storage"
)

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService     AuthService
	UserService     UserService
	JobService      JobService
	QuestionService QuestionService
	ReviewService   ReviewService
	EmailService    *EmailService
	Tokens          *auth.TokenService
	Storage         storage.Storage
}
