package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"
	mockSvc "github.com/tkndbj/nar24admin-sub002/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func invokeRequireAdmin(t *testing.T, verifier service.TokenVerifier, authHeader string) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/tickets", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return c.NoContent(http.StatusOK)
	}

	err := NewAuthMiddleware(verifier).RequireAdmin(next)(c)
	require.NoError(t, err)

	return rec, reached
}

func TestRequireAdminAcceptsAdminToken(t *testing.T) {
	t.Parallel()

	verifier := mockSvc.NewMockTokenVerifier(t)
	verifier.EXPECT().
		Verify(mock.Anything, "valid-token").
		Return(&service.AdminClaims{UID: "admin-1", Email: "admin@example.com", Admin: true}, nil)

	rec, reached := invokeRequireAdmin(t, verifier, "Bearer valid-token")
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdminMissingHeader(t *testing.T) {
	t.Parallel()

	rec, reached := invokeRequireAdmin(t, mockSvc.NewMockTokenVerifier(t), "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminRejectsNonBearerHeader(t *testing.T) {
	t.Parallel()

	rec, reached := invokeRequireAdmin(t, mockSvc.NewMockTokenVerifier(t), "Basic dXNlcjpwYXNz")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminRejectsInvalidToken(t *testing.T) {
	t.Parallel()

	verifier := mockSvc.NewMockTokenVerifier(t)
	verifier.EXPECT().
		Verify(mock.Anything, "expired").
		Return(nil, errors.New("token expired"))

	rec, reached := invokeRequireAdmin(t, verifier, "Bearer expired")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdminRejectsNonAdminClaims(t *testing.T) {
	t.Parallel()

	verifier := mockSvc.NewMockTokenVerifier(t)
	verifier.EXPECT().
		Verify(mock.Anything, "user-token").
		Return(&service.AdminClaims{UID: "u1", Admin: false}, nil)

	rec, reached := invokeRequireAdmin(t, verifier, "Bearer user-token")
	assert.False(t, reached)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
