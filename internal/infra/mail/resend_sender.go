// Package mail sends transactional email through the Resend API.
package mail

import (
	"context"
	"fmt"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v3"
)

type resendSender struct {
	client    *resend.Client
	fromEmail string
	siteURL   string
}

// NewResendSender creates a MailService backed by the Resend API.
func NewResendSender(apiKey, fromEmail, siteURL string) service.MailService {
	return &resendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		siteURL:   siteURL,
	}
}

// SendWelcome sends the welcome mail to a newly approved user.
func (s *resendSender) SendWelcome(ctx context.Context, toEmail, displayName string) error {
	greeting := "Welcome to Nar24"
	if displayName != "" {
		greeting = fmt.Sprintf("Welcome to Nar24, %s", displayName)
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;font-family:Arial,Helvetica,sans-serif;background-color:#f6f6f6;">
  <table width="100%%" cellpadding="0" cellspacing="0" style="padding:40px 0;">
    <tr>
      <td align="center">
        <table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;padding:40px;">
          <tr>
            <td>
              <h1 style="color:#1a1a2e;font-size:22px;margin:0 0 16px 0;">%s</h1>
              <p style="color:#4a5568;font-size:15px;line-height:1.6;margin:0 0 24px 0;">
                Your account is ready. Browse the marketplace, follow your favourite shops
                and keep an eye on your notifications for deals.
              </p>
              <a href="%s" style="color:#e5383b;font-size:15px;">Open Nar24</a>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`, greeting, s.siteURL)

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{toEmail},
		Subject: "Welcome to Nar24",
		Html:    html,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return errors.Wrap(err, "failed to send welcome email")
	}

	return nil
}
