package repository

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
)

// NotificationRepository writes user notifications and broadcast audit records.
type NotificationRepository interface {
	// CreateBroadcast persists the audit record of one broadcast send.
	CreateBroadcast(ctx context.Context, broadcast *entity.Broadcast) error

	// FanOut writes one copy of the notification into every listed user's
	// notification subcollection. Writes are batched by the implementation.
	FanOut(ctx context.Context, userIDs []string, notification *entity.Notification) error
}
