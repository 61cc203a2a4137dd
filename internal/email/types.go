package email

// Email - одно исходящее письмо
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData - данные для шаблонов писем
type TemplateData map[string]interface{}

// Provider отправляет уведомления пользователям (письмо о верификации jobholder'а)
type Provider interface {
	Send(email *Email) error
	SendTemplate(to []string, subject string, templateName string, data TemplateData) error

	// Validate вызывается при старте, чтобы не узнать о кривом SMTP на первом письме
	Validate() error
}

type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
