package impl

import (
	"context"
	"testing"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"
	mockRepo "github.com/tkndbj/nar24admin-sub002/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTicketListOpen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ticketRepo := mockRepo.NewMockTicketRepository(t)
	service := NewTicketService(TicketServiceParams{TicketRepo: ticketRepo})

	expected := []*entity.SupportTicket{{ID: "t1", Status: entity.TicketOpen}}
	ticketRepo.EXPECT().ListOpen(ctx).Return(expected, nil)

	tickets, err := service.ListOpen(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, tickets)
}

func TestTicketAnswer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ticketRepo := mockRepo.NewMockTicketRepository(t)
	service := NewTicketService(TicketServiceParams{TicketRepo: ticketRepo})

	ticketRepo.EXPECT().FindByID(ctx, "t1").Return(&entity.SupportTicket{ID: "t1"}, nil)
	ticketRepo.EXPECT().
		Update(ctx, "t1", mock.Anything).
		Run(func(_ context.Context, _ string, updates map[string]interface{}) {
			assert.Equal(t, string(entity.TicketAnswered), updates["status"])
			assert.Equal(t, "restart the app", updates["answer"])
			assert.NotNil(t, updates["answeredAt"])
		}).
		Return(nil)

	require.NoError(t, service.Answer(ctx, "t1", "restart the app"))
}

func TestTicketAnswerUnknownTicket(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ticketRepo := mockRepo.NewMockTicketRepository(t)
	service := NewTicketService(TicketServiceParams{TicketRepo: ticketRepo})

	ticketRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrTicketNotFound)

	err := service.Answer(ctx, "ghost", "hello")
	require.ErrorIs(t, err, domainerrors.ErrTicketNotFound)
}

func TestTicketClose(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ticketRepo := mockRepo.NewMockTicketRepository(t)
	service := NewTicketService(TicketServiceParams{TicketRepo: ticketRepo})

	ticketRepo.EXPECT().FindByID(ctx, "t1").Return(&entity.SupportTicket{ID: "t1"}, nil)
	ticketRepo.EXPECT().
		Update(ctx, "t1", map[string]interface{}{"status": string(entity.TicketClosed)}).
		Return(nil)

	require.NoError(t, service.Close(ctx, "t1"))
}
