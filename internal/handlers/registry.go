package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler     *AuthHandler
	AdminHandler    *AdminHandler
	JobHandler      *JobHandler
	QuestionHandler *QuestionHandler
	ReviewHandler   *ReviewHandler
	FileHandler     *FileHandler
	HealthHandler   *HealthHandler
}
