package repository

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
)

// CategoryIndexRepository maintains the denormalized per-category owner lookup.
type CategoryIndexRepository interface {
	// AddOwner upserts the owner into every given path's entry with set-union
	// semantics. All upserts of one call are issued as a single batch.
	AddOwner(ctx context.Context, paths []entity.CategoryPath, owner entity.IndexOwner) error

	// RemoveOwner removes the owner from every given path's entry. Present so
	// lifecycle transitions that retire a live record can decrement the index.
	RemoveOwner(ctx context.Context, paths []entity.CategoryPath, owner entity.IndexOwner) error
}
