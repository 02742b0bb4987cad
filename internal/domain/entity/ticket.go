package entity

import "time"

// TicketStatus is the lifecycle state of a support ticket.
type TicketStatus string

const (
	TicketOpen     TicketStatus = "open"
	TicketAnswered TicketStatus = "answered"
	TicketClosed   TicketStatus = "closed"
)

// SupportTicket is one user support request handled from the admin console.
type SupportTicket struct {
	ID         string       `firestore:"id" json:"id"`
	UserID     string       `firestore:"userId" json:"userId"`
	Subject    string       `firestore:"subject" json:"subject"`
	Message    string       `firestore:"message" json:"message"`
	Status     TicketStatus `firestore:"status" json:"status"`
	Answer     string       `firestore:"answer,omitempty" json:"answer,omitempty"`
	CreatedAt  time.Time    `firestore:"createdAt" json:"createdAt"`
	AnsweredAt *time.Time   `firestore:"answeredAt,omitempty" json:"answeredAt,omitempty"`
}
