package fsdb

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type notificationRepository struct {
	client *firestore.Client
}

// NewNotificationRepository creates the Firestore-backed notification repository.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{client: client}
}

// CreateBroadcast persists the audit record of one broadcast send.
func (r *notificationRepository) CreateBroadcast(ctx context.Context, broadcast *entity.Broadcast) error {
	ref := r.client.Collection(broadcastsCollection).Doc(broadcast.ID)
	if _, err := ref.Set(ctx, broadcast); err != nil {
		return classifyWriteError(err)
	}

	return nil
}

// FanOut writes one copy of the notification into every listed user's
// notification subcollection through a BulkWriter. Unlike the review
// decision, the fan-out needs throughput rather than atomicity: a partially
// delivered broadcast is acceptable, a partially applied decision is not.
func (r *notificationRepository) FanOut(ctx context.Context, userIDs []string, notification *entity.Notification) error {
	writer := r.client.BulkWriter(ctx)

	var jobs []*firestore.BulkWriterJob
	for _, userID := range userIDs {
		ref := r.client.Collection(usersCollection).Doc(userID).
			Collection(notificationsSubcol).Doc(notification.ID)

		job, err := writer.Set(ref, notification)
		if err != nil {
			writer.End()

			return errors.Wrap(err, "failed to enqueue notification write")
		}
		jobs = append(jobs, job)
	}

	writer.End()

	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			return classifyWriteError(err)
		}
	}

	return nil
}
