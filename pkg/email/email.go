package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"

	"pickme-backend/config"
)

// EmailService sends suggestion mail via SMTP.
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

// SuggestionData holds the fields rendered into a suggestion email.
type SuggestionData struct {
	ToEmail        string
	ToNickName     string
	EnterpriseName string
	FromEmail      string
}

func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

const suggestionTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>You received a position suggestion</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #0066cc; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background: #f9f9f9; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Position Suggestion</h1>
        </div>
        <div class="content">
            <p>Hello {{.ToNickName}},</p>
            <p><strong>{{.EnterpriseName}}</strong> viewed your profile and would like
            to suggest a position to you.</p>
            <p>Reply to {{.FromEmail}} if you are interested.</p>
        </div>
        <div class="footer">
            <p>This email was sent because an enterprise suggested a position to your account.</p>
        </div>
    </div>
</body>
</html>`

// SendSuggestion renders and delivers a suggestion email to the candidate.
// The context is accepted for interface symmetry; net/smtp has no
// cancellation support.
func (s *EmailService) SendSuggestion(_ context.Context, data SuggestionData) error {
	tmpl, err := template.New("suggestion").Parse(suggestionTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := fmt.Sprintf("%s suggested a position to you", data.EnterpriseName)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Reply-To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		data.ToEmail,
		data.FromEmail,
		subject,
		body.String(),
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{data.ToEmail}, msg); err != nil {
		return fmt.Errorf("failed to send suggestion email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
