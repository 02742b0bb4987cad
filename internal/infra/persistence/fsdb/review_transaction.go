package fsdb

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// fsReviewTransactionManager implements the domain's ReviewTransactionManager
// on Firestore transactions. The transactional read of the submission inside
// Execute is what closes the race between two admins deciding the same
// record: the commit fails and retries if the submission changed underneath,
// so the pending guard is re-evaluated against the latest state.
type fsReviewTransactionManager struct {
	client *firestore.Client
}

// NewReviewTransactionManager is the constructor for fsReviewTransactionManager.
func NewReviewTransactionManager(client *firestore.Client) repository.ReviewTransactionManager {
	return &fsReviewTransactionManager{client: client}
}

// fsReviewStore binds the staged reads and writes of one decision to a single
// Firestore transaction.
type fsReviewStore struct {
	tx     *firestore.Transaction
	client *firestore.Client
	queue  entity.ReviewQueue
}

// Submission reads the submission within the transaction.
func (s *fsReviewStore) Submission(id string) (*entity.Submission, error) {
	snap, err := s.tx.Get(s.client.Collection(s.queue.Submissions).Doc(id))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to get submission in transaction")
	}

	return entity.SubmissionFromDoc(snap.Ref.ID, snap.Data()), nil
}

// ListingExists reads the live collection at the target key within the
// transaction.
func (s *fsReviewStore) ListingExists(collection entity.ListingCollection, id string) (bool, error) {
	snap, err := s.tx.Get(s.client.Collection(string(collection)).Doc(id))
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to read target record in transaction")
	}

	return snap.Exists(), nil
}

// CreateListing stages the promoted document for the commit.
func (s *fsReviewStore) CreateListing(collection entity.ListingCollection, id string, payload map[string]any) error {
	ref := s.client.Collection(string(collection)).Doc(id)

	return errors.WithStack(s.tx.Create(ref, payload))
}

// UpdateSubmission stages a partial update of the submission document.
func (s *fsReviewStore) UpdateSubmission(id string, updates map[string]any) error {
	ref := s.client.Collection(s.queue.Submissions).Doc(id)

	return errors.WithStack(s.tx.Set(ref, updates, firestore.MergeAll))
}

// Execute runs fn within a Firestore transaction. Guard errors carried as
// AppErrors pass through untouched; commit failures are classified by the
// store's error code.
func (tm *fsReviewTransactionManager) Execute(ctx context.Context, queue entity.ReviewQueue, fn func(store repository.ReviewStore) error) error {
	err := tm.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(&fsReviewStore{tx: tx, client: tm.client, queue: queue})
	})
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return classifyWriteError(err)
}
