package repository

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
)

// ReviewStore is the view of the document store available inside one review
// transaction. Reads observe a consistent snapshot; writes are staged and
// commit together, so a decision is either fully applied or not at all.
type ReviewStore interface {
	// Submission reads a submission within the transaction.
	// Returns ErrSubmissionNotFound if the document is absent.
	Submission(id string) (*entity.Submission, error)

	// ListingExists reads the live collection at the target key within the
	// transaction, guarding against clobbering a previously promoted record.
	ListingExists(collection entity.ListingCollection, id string) (bool, error)

	// CreateListing stages the promoted document for the commit.
	CreateListing(collection entity.ListingCollection, id string, payload map[string]any) error

	// UpdateSubmission stages a partial update of the submission document.
	UpdateSubmission(id string, updates map[string]any) error
}

// ReviewTransactionManager runs a review decision as a single transaction
// against the document store. If fn returns an error nothing is written;
// otherwise all staged writes commit atomically. The store retries fn on
// contention, so fn must be side-effect free apart from staged writes.
type ReviewTransactionManager interface {
	Execute(ctx context.Context, queue entity.ReviewQueue, fn func(store ReviewStore) error) error
}
