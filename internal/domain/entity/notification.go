package entity

import "time"

// NotificationType tags the kind of a user notification document.
type NotificationType string

const (
	NotificationBroadcast NotificationType = "broadcast"
)

// Notification is one document in a user's notification subcollection. It
// carries at most one cross-reference: either a product or a shop, never both.
type Notification struct {
	ID        string           `firestore:"id" json:"id"`
	Type      NotificationType `firestore:"type" json:"type"`
	Title     string           `firestore:"title" json:"title"`
	Message   string           `firestore:"message" json:"message"`
	ProductID string           `firestore:"productId,omitempty" json:"productId,omitempty"`
	ShopID    string           `firestore:"shopId,omitempty" json:"shopId,omitempty"`
	Read      bool             `firestore:"read" json:"read"`
	CreatedAt time.Time        `firestore:"createdAt" json:"createdAt"`
}

// Broadcast is the audit record of one admin broadcast send.
type Broadcast struct {
	ID         string    `firestore:"id" json:"id"`
	Title      string    `firestore:"title" json:"title"`
	Message    string    `firestore:"message" json:"message"`
	ProductID  string    `firestore:"productId,omitempty" json:"productId,omitempty"`
	ShopID     string    `firestore:"shopId,omitempty" json:"shopId,omitempty"`
	Recipients int       `firestore:"recipients" json:"recipients"`
	CreatedAt  time.Time `firestore:"createdAt" json:"createdAt"`
}
