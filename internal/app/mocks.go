package app

import (
	"strings"

	"campushire_backend/internal/email"
	"campushire_backend/internal/logger"
)

// MockEmailProvider используется для тестов и локальной разработки.
// Письма не отправляются, только пишутся в лог.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error {
	logger.Info("mock email", "to", strings.Join(msg.To, ","), "subject", msg.Subject)
	return nil
}

func (m *MockEmailProvider) SendTemplate(to []string, subject string, templateName string, data email.TemplateData) error {
	logger.Info("mock email", "to", strings.Join(to, ","), "subject", subject, "template", templateName)
	return nil
}

func (m *MockEmailProvider) Validate() error { return nil }
