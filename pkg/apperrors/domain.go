package apperrors

import (
	"net/http"
)

/*
Фабрики и предопределенные переменные для ошибок домена.
Предопределенные значения нельзя мутировать: используйте WithDetails/WithError,
они возвращают копию.
*/

// ErrDuplicateIdentity - email или username уже заняты (409).
// field - "email" или "username".
func ErrDuplicateIdentity(field string) *AppError {
	msg := "Email already in use"
	if field == "username" {
		msg = "Username already taken"
	}
	return New(CodeAlreadyExists, "auth", msg, http.StatusConflict).
		WithDetails(map[string]string{"field": field})
}

// ErrOwnership - операция над чужой записью (403)
func ErrOwnership(domain string) *AppError {
	return New(CodeForbidden, domain, "You can only modify records you posted", http.StatusForbidden)
}

// --- Auth ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"auth",
	"Invalid user role for this operation",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// --- Users ---

var ErrUserNotFound = New(
	CodeNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// --- Jobs / Questions / Reviews ---

var ErrJobNotFound = New(
	CodeNotFound,
	"job",
	"Job not found",
	http.StatusNotFound,
)

var ErrQuestionNotFound = New(
	CodeNotFound,
	"question",
	"Question not found",
	http.StatusNotFound,
)

var ErrReviewNotFound = New(
	CodeNotFound,
	"review",
	"Review not found",
	http.StatusNotFound,
)

var ErrCollegeMismatch = New(
	CodeForbidden,
	"job",
	"Job belongs to another college",
	http.StatusForbidden,
)

// --- Uploads ---

var ErrFileTooLarge = New(
	CodeLimitExceeded,
	"validation",
	"File size exceeds the allowed limit",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidFileType = New(
	CodeValidationFailed,
	"validation",
	"The provided file type is not allowed",
	http.StatusUnsupportedMediaType,
)
