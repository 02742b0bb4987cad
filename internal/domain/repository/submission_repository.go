// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
)

// Domain-specific errors for submission persistence.
var (
	// ErrSubmissionNotFound is returned when a submission is not found.
	ErrSubmissionNotFound = errors.New("submission not found")
)

// SubmissionRepository defines read access to one queue's submission collection.
type SubmissionRepository interface {
	// FindPending retrieves all pending submissions of a queue, newest first.
	// The filter and ordering are pushed into the store's native query.
	FindPending(ctx context.Context, queue entity.ReviewQueue) ([]*entity.Submission, error)

	// WatchPending subscribes to the pending set of a queue. Every change to
	// the underlying collection delivers a fresh snapshot on the channel.
	// On a subscription error the channel delivers an empty snapshot and is
	// closed; the caller is never crashed. The subscription ends when ctx is
	// cancelled.
	WatchPending(ctx context.Context, queue entity.ReviewQueue) (<-chan []*entity.Submission, error)

	// FindByID retrieves a single submission by its document key.
	FindByID(ctx context.Context, queue entity.ReviewQueue, id string) (*entity.Submission, error)
}
