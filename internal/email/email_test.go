package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTemplates_RenderJobholderVerified(t *testing.T) {
	tm, err := NewDefaultTemplateManager()
	require.NoError(t, err)

	html, err := tm.Render(TemplateJobholderVerified, TemplateData{
		"Username": "alice",
		"College":  "MIT",
		"Email":    "alice@mit.edu",
		"LoginURL": "https://jobs.example/login",
	})
	require.NoError(t, err)
	assert.Contains(t, html, "Hi alice")
	assert.Contains(t, html, "<b>MIT</b>")
	assert.Contains(t, html, "https://jobs.example/login")
}

func TestTemplateManager_UnknownTemplate(t *testing.T) {
	_, err := NewTemplateManager().Render("missing", nil)
	assert.Error(t, err)
}

func TestTemplateManager_EscapesHTML(t *testing.T) {
	tm := NewTemplateManager()
	require.NoError(t, tm.AddTemplate("t", "<p>{{.Name}}</p>"))

	out, err := tm.Render("t", TemplateData{"Name": "<script>"})
	require.NoError(t, err)
	assert.Equal(t, "<p>&lt;script&gt;</p>", out)
}

func TestSMTPProvider_Validate(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "", Port: 587}, nil)
	assert.Error(t, p.Validate())

	p = NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com"}, nil)
	assert.NoError(t, p.Validate())

	err := p.SendTemplate([]string{"a@b.c"}, "s", "x", nil)
	assert.Error(t, err, "renderer is required")
}

func TestSMTPProvider_BuildMessageRequiresRecipients(t *testing.T) {
	p := NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", Port: 587, FromEmail: "noreply@example.com"}, nil)
	_, err := p.buildMessage(&Email{Subject: "hi"})
	assert.Error(t, err)

	m, err := p.buildMessage(&Email{To: []string{"a@b.c"}, Subject: "hi", Body: "text"})
	require.NoError(t, err)
	assert.Equal(t, []string{"hi"}, m.GetHeader("Subject"))
}

func TestSMTPConfig_Defaults(t *testing.T) {
	var nilCfg *SMTPConfig
	assert.False(t, nilCfg.Enabled())
	assert.False(t, (&SMTPConfig{}).Enabled())

	p := NewSMTPProvider(&SMTPConfig{Host: "smtp.example.com", FromEmail: "noreply@example.com"}, nil)
	assert.Equal(t, 587, p.config.Port)
	assert.Equal(t, DefaultFromName, p.config.FromName)

	m, err := p.buildMessage(&Email{To: []string{"a@b.c"}, Subject: "hi", Body: "text"})
	require.NoError(t, err)
	assert.Contains(t, m.GetHeader("From")[0], DefaultFromName)
}
