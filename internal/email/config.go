package email

// DefaultFromName - имя отправителя, если в конфиге пусто
const DefaultFromName = "CampusHire"

// SMTPConfig - секция email конфига приложения
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Enabled: без хоста уведомления только пишутся в лог
func (c *SMTPConfig) Enabled() bool {
	return c != nil && c.Host != ""
}

func (c SMTPConfig) withDefaults() SMTPConfig {
	if c.Port == 0 {
		c.Port = 587
	}
	if c.FromName == "" {
		c.FromName = DefaultFromName
	}
	return c
}
