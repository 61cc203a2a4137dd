package repositories

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already in use")
	ErrUsernameTaken     = errors.New("username already taken")
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrJobNotFound      = errors.New("job not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrReviewNotFound   = errors.New("review not found")
)
