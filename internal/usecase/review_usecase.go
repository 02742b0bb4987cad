// Package usecase defines the application service interfaces.
package usecase

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
)

// ReviewOutcome is the result kind of an approve call.
type ReviewOutcome string

const (
	// OutcomePromoted means a live listing was created.
	OutcomePromoted ReviewOutcome = "promoted"
	// OutcomeDuplicate means a record already existed at the target key; the
	// submission was flipped to duplicate instead of clobbering it. This is a
	// success outcome, not an error.
	OutcomeDuplicate ReviewOutcome = "duplicate"
)

// Decision reports what an approve call did.
type Decision struct {
	Outcome    ReviewOutcome            `json:"outcome"`
	ListingID  string                   `json:"listingId"`
	Collection entity.ListingCollection `json:"collection"`
}

// ReviewUsecase drives the application review and promotion workflow.
type ReviewUsecase interface {
	// Queues lists the available moderation queues.
	Queues() []entity.ReviewQueue

	// ListPending returns the pending submissions of a queue, newest first.
	ListPending(ctx context.Context, queueName string) ([]*entity.Submission, error)

	// WatchPending subscribes to the pending set of a queue.
	WatchPending(ctx context.Context, queueName string) (<-chan []*entity.Submission, error)

	// Get loads one submission for detail review.
	Get(ctx context.Context, queueName, id string) (*entity.Submission, error)

	// Approve promotes a pending submission into its live collection, or
	// flips it to duplicate when the target key is already taken.
	Approve(ctx context.Context, queueName, id string) (*Decision, error)

	// Reject marks a pending submission rejected with the given reason
	// (a configured default when empty).
	Reject(ctx context.Context, queueName, id, reason string) error
}
