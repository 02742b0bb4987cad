package fsdb

import (
	"context"
	"log/slog"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type submissionRepository struct {
	client *firestore.Client
	logger *slog.Logger
}

// NewSubmissionRepository creates the Firestore-backed submission repository.
func NewSubmissionRepository(client *firestore.Client, logger *slog.Logger) repository.SubmissionRepository {
	return &submissionRepository{client: client, logger: logger}
}

// pendingQuery pushes the pending filter and newest-first ordering into the
// store's native query instead of filtering client-side.
func (r *submissionRepository) pendingQuery(queue entity.ReviewQueue) firestore.Query {
	return r.client.Collection(queue.Submissions).
		Where("status", "==", string(entity.StatusPending)).
		OrderBy("createdAt", firestore.Desc)
}

// FindPending retrieves all pending submissions of a queue, newest first.
func (r *submissionRepository) FindPending(ctx context.Context, queue entity.ReviewQueue) ([]*entity.Submission, error) {
	docs := r.pendingQuery(queue).Documents(ctx)
	defer docs.Stop()

	var pending []*entity.Submission
	for {
		snap, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate pending submissions")
		}

		pending = append(pending, entity.SubmissionFromDoc(snap.Ref.ID, snap.Data()))
	}

	return pending, nil
}

// WatchPending subscribes to the pending set of a queue. On a subscription
// error the channel delivers one empty snapshot and closes, so the consumer
// stops showing a loading state without crashing.
func (r *submissionRepository) WatchPending(ctx context.Context, queue entity.ReviewQueue) (<-chan []*entity.Submission, error) {
	snapshots := r.pendingQuery(queue).Snapshots(ctx)
	updates := make(chan []*entity.Submission, 1)

	go func() {
		defer close(updates)
		defer snapshots.Stop()

		for {
			snap, err := snapshots.Next()
			if err != nil {
				if ctx.Err() == nil {
					r.logger.Warn("pending subscription failed",
						slog.String("queue", queue.Name),
						slog.Any("error", err),
					)
					select {
					case updates <- []*entity.Submission{}:
					case <-ctx.Done():
					}
				}

				return
			}

			docSnaps, err := snap.Documents.GetAll()
			if err != nil {
				r.logger.Warn("pending snapshot read failed",
					slog.String("queue", queue.Name),
					slog.Any("error", err),
				)

				continue
			}

			pending := make([]*entity.Submission, 0, len(docSnaps))
			for _, doc := range docSnaps {
				pending = append(pending, entity.SubmissionFromDoc(doc.Ref.ID, doc.Data()))
			}

			select {
			case updates <- pending:
			case <-ctx.Done():
				return
			}
		}
	}()

	return updates, nil
}

// FindByID retrieves a single submission by its document key.
func (r *submissionRepository) FindByID(ctx context.Context, queue entity.ReviewQueue, id string) (*entity.Submission, error) {
	snap, err := r.client.Collection(queue.Submissions).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to get submission")
	}

	return entity.SubmissionFromDoc(snap.Ref.ID, snap.Data()), nil
}
