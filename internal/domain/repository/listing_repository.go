package repository

import (
	"context"
	"errors"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
)

// ErrListingNotFound is returned when a live listing is not found.
var ErrListingNotFound = errors.New("listing not found")

// ListingRepository defines read access to the live listing collections.
type ListingRepository interface {
	// FindByID retrieves a live listing from the given collection.
	FindByID(ctx context.Context, collection entity.ListingCollection, id string) (*entity.Listing, error)
}
