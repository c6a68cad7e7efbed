package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/adityapw/user_management_app/internal/core/ports"
	"github.com/adityapw/user_management_app/internal/platform/config"
)

const resetPasswordTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Reset Your Password</h2>
  <p>We received a request to reset the password for your {{.AppName}} account.</p>
  <p>
    <a href="{{.ResetURL}}" style="display:inline-block;padding:10px 20px;background:#2d6cdf;color:#fff;text-decoration:none;border-radius:4px;">
      Reset Password
    </a>
  </p>
  <p>If the button does not work, copy this link into your browser:</p>
  <p>{{.ResetURL}}</p>
  <p>If you did not request a password reset, you can safely ignore this email.</p>
  <p style="color:#888;font-size:12px;">&copy; {{.Year}} {{.AppName}}</p>
</body>
</html>`

// SMTPSender delivers transactional mail over SMTP.
type SMTPSender struct {
	cfg      *config.Config
	client   *mail.Client
	resetTpl *template.Template
}

var _ ports.EmailSender = (*SMTPSender)(nil)

// NewSMTPSender builds the SMTP client from configuration.
func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.MailPort),
		mail.WithTimeout(10 * time.Second),
	}
	if cfg.MailUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.MailUser),
			mail.WithPassword(cfg.MailPassword),
		)
	}

	client, err := mail.NewClient(cfg.MailHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	tpl, err := template.New("reset-password-email").Parse(resetPasswordTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse reset email template: %w", err)
	}

	return &SMTPSender{cfg: cfg, client: client, resetTpl: tpl}, nil
}

// SendPasswordResetEmail delivers the reset link embedding the token.
func (s *SMTPSender) SendPasswordResetEmail(ctx context.Context, recipient, token string) error {
	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.ClientBaseURL, token)

	var body bytes.Buffer
	err := s.resetTpl.Execute(&body, map[string]any{
		"AppName":  s.cfg.AppName,
		"ResetURL": resetURL,
		"Year":     time.Now().Year(),
	})
	if err != nil {
		return fmt.Errorf("failed to render reset email: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(s.cfg.MailFromName, s.cfg.MailFrom); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject("Reset Your Password")
	msg.SetBodyString(mail.TypeTextHTML, body.String())

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send reset email: %w", err)
	}
	return nil
}
