// Package auth verifies admin credentials against Firebase Auth and performs
// account-level operations through the Admin SDK.
package auth

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

type firebaseAuthService struct {
	client *fbauth.Client
}

// NewFirebaseAuthService creates the Firebase-backed verifier and deleter.
func NewFirebaseAuthService(ctx context.Context, app *firebase.App) (service.TokenVerifier, service.AccountDeleter, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get auth client")
	}

	svc := &firebaseAuthService{client: client}

	return svc, svc, nil
}

// Verify checks an ID token and extracts the admin claim. Session handling
// stays with the auth provider; the console only checks the token per call.
func (s *firebaseAuthService) Verify(ctx context.Context, idToken string) (*service.AdminClaims, error) {
	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	claims := &service.AdminClaims{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		claims.Email = email
	}
	if admin, ok := token.Claims["admin"].(bool); ok {
		claims.Admin = admin
	}

	return claims, nil
}

// DeleteUser removes the account from the auth provider.
func (s *firebaseAuthService) DeleteUser(ctx context.Context, uid string) error {
	if err := s.client.DeleteUser(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to delete auth user")
	}

	return nil
}
