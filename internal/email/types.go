package email

// Email is a single outbound message.
type Email struct {
	From     string
	To       []string
	Cc       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData holds values for email templates.
type TemplateData map[string]interface{}
