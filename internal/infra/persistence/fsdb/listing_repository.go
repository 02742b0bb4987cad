package fsdb

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type listingRepository struct {
	client *firestore.Client
}

// NewListingRepository creates the Firestore-backed live listing repository.
func NewListingRepository(client *firestore.Client) repository.ListingRepository {
	return &listingRepository{client: client}
}

// FindByID retrieves a live listing from the given collection.
func (r *listingRepository) FindByID(ctx context.Context, collection entity.ListingCollection, id string) (*entity.Listing, error) {
	snap, err := r.client.Collection(string(collection)).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrListingNotFound
		}

		return nil, errors.Wrap(err, "failed to get listing")
	}

	var listing entity.Listing
	if err := snap.DataTo(&listing); err != nil {
		return nil, errors.Wrap(err, "failed to decode listing")
	}
	listing.ID = snap.Ref.ID

	return &listing, nil
}
