package services

import (
	"context"

	"campushire_backend/internal/email"
	"campushire_backend/internal/logger"
	"campushire_backend/internal/models"
	"campushire_backend/internal/observability"
)

// EmailService предоставляет высокоуровневый интерфейс для уведомлений
type EmailService struct {
	provider email.Provider
	loginURL string
}

func NewEmailService(provider email.Provider, loginURL string) *EmailService {
	return &EmailService{
		provider: provider,
		loginURL: loginURL,
	}
}

// SendJobholderVerified синхронно отправляет письмо о верификации
func (s *EmailService) SendJobholderVerified(user *models.User) error {
	return s.provider.SendTemplate(
		[]string{user.Email},
		"Your CampusHire jobholder account is verified",
		email.TemplateJobholderVerified,
		email.TemplateData{
			"Username": user.Username,
			"College":  user.College,
			"Email":    user.Email,
			"LoginURL": s.loginURL,
		},
	)
}

// NotifyJobholderVerified отправляет письмо в фоне. Ошибка только логируется
// и не влияет на результат админского действия.
func (s *EmailService) NotifyJobholderVerified(ctx context.Context, user models.User) {
	if s == nil || s.provider == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := s.SendJobholderVerified(&user); err != nil {
			observability.EmailsSent.WithLabelValues("failed").Inc()
			logger.CtxWithError(ctx, "failed to send verification email", err, "user_id", user.ID)
			return
		}
		observability.EmailsSent.WithLabelValues("sent").Inc()
		logger.CtxInfo(ctx, "verification email sent", "user_id", user.ID)
	}()
}
