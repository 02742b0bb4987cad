package fsdb

import (
	"context"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

type ticketRepository struct {
	client *firestore.Client
}

// NewTicketRepository creates the Firestore-backed support ticket repository.
func NewTicketRepository(client *firestore.Client) repository.TicketRepository {
	return &ticketRepository{client: client}
}

// ListOpen retrieves all tickets that still await an answer, newest first.
func (r *ticketRepository) ListOpen(ctx context.Context) ([]*entity.SupportTicket, error) {
	docs := r.client.Collection(ticketsCollection).
		Where("status", "==", string(entity.TicketOpen)).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer docs.Stop()

	var tickets []*entity.SupportTicket
	for {
		snap, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to iterate tickets")
		}

		ticket, err := ticketFromSnap(snap)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, nil
}

// FindByID retrieves a single ticket.
func (r *ticketRepository) FindByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	snap, err := r.client.Collection(ticketsCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrTicketNotFound
		}

		return nil, errors.Wrap(err, "failed to get ticket")
	}

	return ticketFromSnap(snap)
}

// Update applies a partial update to a ticket document.
func (r *ticketRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	ref := r.client.Collection(ticketsCollection).Doc(id)
	if _, err := ref.Set(ctx, updates, firestore.MergeAll); err != nil {
		return classifyWriteError(err)
	}

	return nil
}

func ticketFromSnap(snap *firestore.DocumentSnapshot) (*entity.SupportTicket, error) {
	var ticket entity.SupportTicket
	if err := snap.DataTo(&ticket); err != nil {
		return nil, errors.Wrap(err, "failed to decode ticket")
	}
	ticket.ID = snap.Ref.ID

	return &ticket, nil
}
