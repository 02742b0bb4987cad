// Package service defines the interfaces of the external-facing services the
// use cases depend on.
package service

import "context"

// MailService sends transactional email to platform users.
type MailService interface {
	// SendWelcome sends the welcome mail to a newly approved user. Failures
	// are reported to the caller, which decides whether they are fatal.
	SendWelcome(ctx context.Context, toEmail, displayName string) error
}
