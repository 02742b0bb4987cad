package service

import "context"

// PushService sends mobile push notifications.
type PushService interface {
	// SendBatchNotification sends push notifications to multiple device tokens (max 500 tokens)
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
