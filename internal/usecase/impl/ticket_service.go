package impl

import (
	"context"
	"time"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type ticketService struct {
	ticketRepo repository.TicketRepository
	now        func() time.Time
}

// TicketServiceParams holds dependencies for TicketService, injected by Fx.
type TicketServiceParams struct {
	fx.In

	TicketRepo repository.TicketRepository
}

// NewTicketService creates the support ticket service.
func NewTicketService(params TicketServiceParams) usecase.TicketUsecase {
	return &ticketService{
		ticketRepo: params.TicketRepo,
		now:        time.Now,
	}
}

// ListOpen returns all tickets awaiting an answer, newest first.
func (s *ticketService) ListOpen(ctx context.Context) ([]*entity.SupportTicket, error) {
	tickets, err := s.ticketRepo.ListOpen(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list open tickets")
	}

	return tickets, nil
}

// Answer records an answer on a ticket and marks it answered.
func (s *ticketService) Answer(ctx context.Context, id, answer string) error {
	if _, err := s.ticketRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return domainerrors.ErrTicketNotFound
		}

		return errors.Wrap(err, "failed to load ticket")
	}

	updates := map[string]any{
		"status":     string(entity.TicketAnswered),
		"answer":     answer,
		"answeredAt": s.now(),
	}
	if err := s.ticketRepo.Update(ctx, id, updates); err != nil {
		return errors.Wrap(err, "failed to update ticket")
	}

	return nil
}

// Close closes a ticket without an answer.
func (s *ticketService) Close(ctx context.Context, id string) error {
	if _, err := s.ticketRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return domainerrors.ErrTicketNotFound
		}

		return errors.Wrap(err, "failed to load ticket")
	}

	if err := s.ticketRepo.Update(ctx, id, map[string]any{
		"status": string(entity.TicketClosed),
	}); err != nil {
		return errors.Wrap(err, "failed to update ticket")
	}

	return nil
}
