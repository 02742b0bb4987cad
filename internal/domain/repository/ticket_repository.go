package repository

import (
	"context"
	"errors"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
)

// ErrTicketNotFound is returned when a support ticket is not found.
var ErrTicketNotFound = errors.New("ticket not found")

// TicketRepository defines access to the support ticket collection.
type TicketRepository interface {
	// ListOpen retrieves all tickets that still await an answer, newest first.
	ListOpen(ctx context.Context) ([]*entity.SupportTicket, error)

	// FindByID retrieves a single ticket.
	FindByID(ctx context.Context, id string) (*entity.SupportTicket, error)

	// Update applies a partial update to a ticket document.
	Update(ctx context.Context, id string, updates map[string]any) error
}
