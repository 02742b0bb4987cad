package usecase

import "context"

// AccountUsecase covers the admin-initiated account operations.
type AccountUsecase interface {
	// DeleteAccount removes the user from the auth provider and deletes the
	// user document. Failures are surfaced to the operator.
	DeleteAccount(ctx context.Context, uid string) error

	// SendWelcomeEmail sends the welcome mail to a user. A mail provider
	// failure is logged and swallowed; only a missing user is an error.
	SendWelcomeEmail(ctx context.Context, uid string) error
}
