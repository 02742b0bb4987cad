package service

import (
	"context"
	"time"
)

// ListingPromotedEvent announces a freshly promoted listing that still needs
// to be synced into the external search service.
type ListingPromotedEvent struct {
	ListingID    string    `json:"listing_id"`
	Collection   string    `json:"collection"`
	ShopID       string    `json:"shop_id,omitempty"`
	CategoryPath string    `json:"category_path,omitempty"`
	PromotedAt   time.Time `json:"promoted_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishListingPromoted publishes a promotion event for async processing
	PublishListingPromoted(ctx context.Context, event *ListingPromotedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
