package utils

import (
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends HTML email over SMTP
type Mailer struct {
	config EmailConfig
	dialer *gomail.Dialer
}

// NewMailer returns nil when no SMTP host is configured
func NewMailer(config EmailConfig) *Mailer {
	if config.Host == "" {
		return nil
	}
	if config.From == "" {
		config.From = config.Username
	}
	return &Mailer{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// Send delivers a single message
func (m *Mailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// NotificationEmailBody wraps a notification message in the store template
func NotificationEmailBody(name, message string) string {
	return fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>%s</p>
		<p>You can follow up from your 233Plug dashboard.</p>
	`, html.EscapeString(name), html.EscapeString(message))
}
