package email

// Provider sends outbound email.
type Provider interface {
	// Send delivers a fully built message.
	Send(email *Email) error

	// SendWithTemplate renders the named template into the HTML body and sends.
	SendWithTemplate(templateName string, data TemplateData, email *Email) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named templates for email bodies.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
