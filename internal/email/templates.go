package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

const TemplateJobholderVerified = "jobholder_verified"

const jobholderVerifiedTemplate = `<p>Hi {{.Username}},</p>
<p>Your jobholder account for <b>{{.College}}</b> has been verified by an administrator.</p>
<p>You can now sign in with <b>{{.Email}}</b> and start posting jobs, interview questions and reviews.</p>
{{if .LoginURL}}<p><a href="{{.LoginURL}}">Sign in</a></p>{{end}}`

// TemplateManager реализует TemplateRenderer
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: make(map[string]*template.Template),
	}
}

// NewDefaultTemplateManager загружает встроенные шаблоны
func NewDefaultTemplateManager() (*TemplateManager, error) {
	tm := NewTemplateManager()
	if err := tm.AddTemplate(TemplateJobholderVerified, jobholderVerifiedTemplate); err != nil {
		return nil, err
	}
	return tm, nil
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
