package domain

import "context"

// Mailer sends a single email. Implementations may use SES or a no-op double.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// WelcomeEmailData is the template data for the welcome email.
type WelcomeEmailData struct {
	Email    string
	Username string
}

// EmailService defines outbound email operations.
type EmailService interface {
	SendWelcomeMessage(ctx context.Context, data *WelcomeEmailData) error
}
