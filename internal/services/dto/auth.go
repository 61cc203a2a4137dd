package dto

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	College  string `json:"college" validate:"required,max=255"`
	// "user" принимается как синоним student
	Role string `json:"role" validate:"required,is-register-role"`
}

// LoginRequest - запрос входа
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse - токен и профиль
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}
