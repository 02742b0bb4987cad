package service

import "context"

// AdminClaims are the verified identity claims of an admin console caller.
type AdminClaims struct {
	UID   string
	Email string
	Admin bool
}

// TokenVerifier verifies an ID token issued by the external auth provider.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*AdminClaims, error)
}

// AccountDeleter removes a user account from the external auth provider.
type AccountDeleter interface {
	DeleteUser(ctx context.Context, uid string) error
}
