package fsdb

import (
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isNotFound reports whether err is the store's document-absent error.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// classifyWriteError maps a store write failure onto the operator error model
// using the store's structured error code, never its message text.
// Authorization failures and transient transport failures get distinct
// operator messages; everything else is a plain write failure.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}

	switch status.Code(err) {
	case codes.PermissionDenied, codes.Unauthenticated:
		return domainerrors.ErrStorePermissionDenied.WithDetails(err.Error())
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted:
		return domainerrors.ErrStoreUnavailable.WithDetails(err.Error())
	default:
		return domainerrors.ErrWriteFailed.WithDetails(err.Error())
	}
}
