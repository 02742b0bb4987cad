package repository

import (
	"context"
	"errors"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
)

// ErrUserNotFound is returned when a user document is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines access to the platform user collection.
type UserRepository interface {
	// FindByID retrieves a single user document.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// ListPage retrieves one page of users ordered by document key, starting
	// after the given key (empty for the first page). Used by the broadcast
	// fan-out to walk the whole collection with a cursor.
	ListPage(ctx context.Context, startAfter string, limit int) ([]*entity.User, error)

	// Delete removes the user document. Deleting an absent document is not
	// an error.
	Delete(ctx context.Context, id string) error
}
