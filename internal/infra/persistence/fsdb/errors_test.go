package fsdb

import (
	"testing"

	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassifyWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		err          error
		expectedCode string
	}{
		{
			name:         "permission denied",
			err:          status.Error(codes.PermissionDenied, "Missing or insufficient permissions."),
			expectedCode: "STORE_PERMISSION_DENIED",
		},
		{
			name:         "unauthenticated",
			err:          status.Error(codes.Unauthenticated, "request had invalid credentials"),
			expectedCode: "STORE_PERMISSION_DENIED",
		},
		{
			name:         "unavailable",
			err:          status.Error(codes.Unavailable, "transport is closing"),
			expectedCode: "STORE_UNAVAILABLE",
		},
		{
			name:         "deadline exceeded",
			err:          status.Error(codes.DeadlineExceeded, "context deadline exceeded"),
			expectedCode: "STORE_UNAVAILABLE",
		},
		{
			name:         "resource exhausted",
			err:          status.Error(codes.ResourceExhausted, "quota exceeded"),
			expectedCode: "STORE_UNAVAILABLE",
		},
		{
			name:         "other status code",
			err:          status.Error(codes.Aborted, "transaction aborted"),
			expectedCode: "WRITE_FAILED",
		},
		{
			// A message that merely mentions permissions is still classified
			// by code, not by text.
			name:         "misleading message text",
			err:          status.Error(codes.Internal, "permission check unavailable"),
			expectedCode: "WRITE_FAILED",
		},
		{
			name:         "plain error",
			err:          errors.New("connection reset"),
			expectedCode: "WRITE_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			classified := classifyWriteError(tt.err)
			var appErr domainerrors.AppError
			require.ErrorAs(t, classified, &appErr)
			assert.Equal(t, tt.expectedCode, appErr.ErrorCode())
			assert.Contains(t, appErr.Details(), tt.err.Error())
		})
	}

	assert.NoError(t, classifyWriteError(nil))
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	assert.True(t, isNotFound(status.Error(codes.NotFound, "no such document")))
	assert.False(t, isNotFound(status.Error(codes.Internal, "not found in cache")))
	assert.False(t, isNotFound(errors.New("not found")))
}

func TestEncodeIndexKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Electronics", encodeIndexKey("Electronics"))
	assert.Equal(t, "Electronics|Phones", encodeIndexKey("Electronics/Phones"))
	assert.Equal(t, "Electronics|Phones|Smartphones", encodeIndexKey("Electronics/Phones/Smartphones"))
}
