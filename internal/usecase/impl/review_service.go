// Package impl contains the concrete application services.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/tkndbj/nar24admin-sub002/config"
	deliverycontext "github.com/tkndbj/nar24admin-sub002/internal/delivery/context"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reviewService struct {
	submissionRepo repository.SubmissionRepository
	txn            repository.ReviewTransactionManager
	indexRepo      repository.CategoryIndexRepository
	publisher      service.EventPublisher
	config         *config.Config
	logger         *slog.Logger
	now            func() time.Time
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	SubmissionRepo repository.SubmissionRepository
	Txn            repository.ReviewTransactionManager
	IndexRepo      repository.CategoryIndexRepository
	Publisher      service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewReviewService creates the review workflow service.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		submissionRepo: params.SubmissionRepo,
		txn:            params.Txn,
		indexRepo:      params.IndexRepo,
		publisher:      params.Publisher,
		config:         params.Config,
		logger:         params.Logger,
		now:            time.Now,
	}
}

// Queues lists the available moderation queues.
func (s *reviewService) Queues() []entity.ReviewQueue {
	return entity.Queues
}

// ListPending returns the pending submissions of a queue, newest first.
func (s *reviewService) ListPending(ctx context.Context, queueName string) ([]*entity.Submission, error) {
	queue, ok := entity.QueueByName(queueName)
	if !ok {
		return nil, domainerrors.ErrUnknownQueue
	}

	pending, err := s.submissionRepo.FindPending(ctx, queue)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending submissions")
	}

	return pending, nil
}

// WatchPending subscribes to the pending set of a queue.
func (s *reviewService) WatchPending(ctx context.Context, queueName string) (<-chan []*entity.Submission, error) {
	queue, ok := entity.QueueByName(queueName)
	if !ok {
		return nil, domainerrors.ErrUnknownQueue
	}

	updates, err := s.submissionRepo.WatchPending(ctx, queue)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch pending submissions")
	}

	return updates, nil
}

// Get loads one submission for detail review.
func (s *reviewService) Get(ctx context.Context, queueName, id string) (*entity.Submission, error) {
	queue, ok := entity.QueueByName(queueName)
	if !ok {
		return nil, domainerrors.ErrUnknownQueue
	}

	sub, err := s.submissionRepo.FindByID(ctx, queue, id)
	if err != nil {
		if errors.Is(err, repository.ErrSubmissionNotFound) {
			return nil, domainerrors.ErrSubmissionNotFound
		}

		return nil, errors.Wrap(err, "failed to load submission")
	}

	return sub, nil
}

// promotion captures what a committed approve transaction created, for the
// best-effort steps that run strictly after the commit.
type promotion struct {
	submission *entity.Submission
	collection entity.ListingCollection
	listingID  string
	promotedAt time.Time
}

// Approve promotes a pending submission into its live collection. The whole
// decision runs as one store transaction: the pending guard, the duplicate
// read at the target key, the listing create and the status update commit
// together or not at all. A pre-existing record at the target key flips the
// submission to duplicate instead; that is a success outcome.
func (s *reviewService) Approve(ctx context.Context, queueName, id string) (*usecase.Decision, error) {
	queue, ok := entity.QueueByName(queueName)
	if !ok {
		return nil, domainerrors.ErrUnknownQueue
	}

	var decision usecase.Decision
	var promoted *promotion

	err := s.txn.Execute(ctx, queue, func(store repository.ReviewStore) error {
		// The transaction may retry on contention; reset the capture.
		promoted = nil

		sub, err := store.Submission(id)
		if err != nil {
			if errors.Is(err, repository.ErrSubmissionNotFound) {
				return domainerrors.ErrSubmissionNotFound
			}

			return errors.Wrap(err, "failed to load submission")
		}

		if !sub.Pending() {
			return domainerrors.ErrAlreadyProcessed
		}

		collection := queue.TargetCollection(sub)
		targetID := sub.TargetID()
		now := s.now()

		exists, err := store.ListingExists(collection, targetID)
		if err != nil {
			return errors.Wrap(err, "failed to read target record")
		}

		if exists {
			// One-write-wins: never clobber a previously promoted record that
			// shares the reference number. Record the conflict on the
			// submission and stop.
			if err := store.UpdateSubmission(id, map[string]any{
				"status":           string(entity.StatusDuplicate),
				"reviewedAt":       now,
				"existingRecordId": targetID,
			}); err != nil {
				return errors.Wrap(err, "failed to mark submission duplicate")
			}

			decision = usecase.Decision{
				Outcome:    usecase.OutcomeDuplicate,
				ListingID:  targetID,
				Collection: collection,
			}

			return nil
		}

		payload := entity.BuildListingPayload(sub, targetID, now)
		if err := store.CreateListing(collection, targetID, payload); err != nil {
			return errors.Wrap(err, "failed to stage listing create")
		}

		if err := store.UpdateSubmission(id, map[string]any{
			"status":             string(entity.StatusApproved),
			"reviewedAt":         now,
			"approvedRecordId":   targetID,
			"approvedCollection": string(collection),
		}); err != nil {
			return errors.Wrap(err, "failed to stage submission update")
		}

		decision = usecase.Decision{
			Outcome:    usecase.OutcomePromoted,
			ListingID:  targetID,
			Collection: collection,
		}
		promoted = &promotion{
			submission: sub,
			collection: collection,
			listingID:  targetID,
			promotedAt: now,
		}

		return nil
	})
	if err != nil {
		return nil, classifyDecisionError(err)
	}

	// Best-effort steps, strictly after the commit. Their failure never
	// undoes the promotion.
	if promoted != nil {
		s.afterPromotion(ctx, queue, promoted)
	}

	return &decision, nil
}

// Reject marks a pending submission rejected. Same guard as Approve, single
// document update, no duplicate check: a rejection can never collide.
func (s *reviewService) Reject(ctx context.Context, queueName, id, reason string) error {
	queue, ok := entity.QueueByName(queueName)
	if !ok {
		return domainerrors.ErrUnknownQueue
	}

	if reason == "" {
		reason = s.config.Moderation.DefaultRejectReason
	}

	err := s.txn.Execute(ctx, queue, func(store repository.ReviewStore) error {
		sub, err := store.Submission(id)
		if err != nil {
			if errors.Is(err, repository.ErrSubmissionNotFound) {
				return domainerrors.ErrSubmissionNotFound
			}

			return errors.Wrap(err, "failed to load submission")
		}

		if !sub.Pending() {
			return domainerrors.ErrAlreadyProcessed
		}

		if err := store.UpdateSubmission(id, map[string]any{
			"status":          string(entity.StatusRejected),
			"reviewedAt":      s.now(),
			"rejectionReason": reason,
		}); err != nil {
			return errors.Wrap(err, "failed to stage rejection")
		}

		return nil
	})
	if err != nil {
		return classifyDecisionError(err)
	}

	return nil
}

// afterPromotion runs the post-commit side effects: the category index update
// for organization-owned listings and the external sync event. Both are
// logged and swallowed.
func (s *reviewService) afterPromotion(ctx context.Context, queue entity.ReviewQueue, promoted *promotion) {
	sub := promoted.submission
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	if queue.IndexEnabled && sub.ShopID != "" {
		paths := entity.AncestorPaths(sub.CategoryPath)
		if len(paths) > 0 {
			owner := entity.IndexOwner{OwnerID: sub.ShopID, OwnerName: sub.OwnerName}
			if err := s.indexRepo.AddOwner(ctx, paths, owner); err != nil {
				logger.Warn("category index update failed after promotion",
					slog.String("listing_id", promoted.listingID),
					slog.String("shop_id", sub.ShopID),
					slog.Any("error", err),
				)
			}
		}
	}

	event := &service.ListingPromotedEvent{
		ListingID:    promoted.listingID,
		Collection:   string(promoted.collection),
		ShopID:       sub.ShopID,
		CategoryPath: sub.CategoryPath,
		PromotedAt:   promoted.promotedAt,
	}
	if err := s.publisher.PublishListingPromoted(ctx, event); err != nil {
		logger.Warn("promotion event publish failed",
			slog.String("listing_id", promoted.listingID),
			slog.Any("error", err),
		)
	}
}

// classifyDecisionError maps a decision transaction failure onto the operator
// error model. AppErrors produced inside the transaction (guards) and by the
// store layer (write classification) pass through; anything else is a generic
// write failure.
func classifyDecisionError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.ErrWriteFailed.WithDetails(err.Error())
}
