package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Built-in templates for certificate lifecycle notifications.
const (
	TemplateCertificateExpiringSoon = "certificate_expiring_soon"
	TemplateCertificateExpired      = "certificate_expired"
)

var builtinTemplates = map[string]string{
	TemplateCertificateExpiringSoon: `<html><body>
<h2>Certificate expiring soon</h2>
<p>The certificate <strong>{{.CertificateNumber}}</strong> ({{.CertificateType}})
for <strong>{{.ManufacturerName}}</strong> expires on <strong>{{.ExpiryDate}}</strong>.</p>
<p>Please arrange renewal with the issuing body ({{.Issuer}}) before the expiry date.</p>
</body></html>`,

	TemplateCertificateExpired: `<html><body>
<h2>Certificate expired</h2>
<p>The certificate <strong>{{.CertificateNumber}}</strong> ({{.CertificateType}})
for <strong>{{.ManufacturerName}}</strong> expired on <strong>{{.ExpiryDate}}</strong>.</p>
<p>Affected products may no longer be placed on the market until a valid
certificate is on file.</p>
</body></html>`,
}

// TemplateManager is a thread-safe TemplateRenderer.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in templates.
func NewTemplateManager() (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}
	for name, body := range builtinTemplates {
		if err := tm.AddTemplate(name, body); err != nil {
			return nil, err
		}
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
		return fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()
	return nil
}
