package email

import "time"

// SMTPConfig holds SMTP server settings.
type SMTPConfig struct {
	Host      string        `yaml:"host"`
	Port      int           `yaml:"port"`
	Username  string        `yaml:"username"`
	Password  string        `yaml:"password"`
	FromEmail string        `yaml:"from_email"`
	FromName  string        `yaml:"from_name"`
	UseTLS    bool          `yaml:"use_tls"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DefaultConfig returns sensible defaults for local development.
func DefaultConfig() *SMTPConfig {
	return &SMTPConfig{
		Host:    "localhost",
		Port:    587,
		UseTLS:  true,
		Timeout: 30 * time.Second,
	}
}
