package usecase

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
)

// TicketUsecase covers the support ticket screen.
type TicketUsecase interface {
	// ListOpen returns all tickets awaiting an answer, newest first.
	ListOpen(ctx context.Context) ([]*entity.SupportTicket, error)

	// Answer records an answer on a ticket and marks it answered.
	Answer(ctx context.Context, id, answer string) error

	// Close closes a ticket without an answer.
	Close(ctx context.Context, id string) error
}
