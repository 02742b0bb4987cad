package fsdb

import (
	"context"
	"strings"
	"time"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type categoryIndexRepository struct {
	client *firestore.Client
}

// NewCategoryIndexRepository creates the Firestore-backed category index repository.
func NewCategoryIndexRepository(client *firestore.Client) repository.CategoryIndexRepository {
	return &categoryIndexRepository{client: client}
}

// AddOwner upserts the owner into every path's entry in one atomic batch.
// ArrayUnion gives the set-union semantics: the same {ownerId, ownerName}
// pair is never duplicated.
func (r *categoryIndexRepository) AddOwner(ctx context.Context, paths []entity.CategoryPath, owner entity.IndexOwner) error {
	return r.apply(ctx, paths, firestore.ArrayUnion(ownerValue(owner)))
}

// RemoveOwner removes the owner from every path's entry in one atomic batch.
func (r *categoryIndexRepository) RemoveOwner(ctx context.Context, paths []entity.CategoryPath, owner entity.IndexOwner) error {
	return r.apply(ctx, paths, firestore.ArrayRemove(ownerValue(owner)))
}

func (r *categoryIndexRepository) apply(ctx context.Context, paths []entity.CategoryPath, owners any) error {
	if len(paths) == 0 {
		return nil
	}

	batch := r.client.Batch()
	now := time.Now()
	for _, path := range paths {
		ref := r.client.Collection(categoryIndexCollection).Doc(encodeIndexKey(path.Key))
		batch.Set(ref, map[string]any{
			"path":        path.Key,
			"level":       path.Level,
			"owners":      owners,
			"lastUpdated": now,
		}, firestore.MergeAll)
	}

	if _, err := batch.Commit(ctx); err != nil {
		return errors.Wrap(err, "failed to commit category index batch")
	}

	return nil
}

// encodeIndexKey makes a category path usable as a document key; Firestore
// document IDs must not contain slashes.
func encodeIndexKey(pathKey string) string {
	return strings.ReplaceAll(pathKey, "/", "|")
}

// ownerValue is the document form of an owner pair. Plain maps keep the
// ArrayUnion equality check independent of struct tags.
func ownerValue(owner entity.IndexOwner) map[string]any {
	return map[string]any{
		"ownerId":   owner.OwnerID,
		"ownerName": owner.OwnerName,
	}
}
