package usecase

import "context"

// BroadcastInput is one admin broadcast to all users. At most one of
// ProductID and ShopID may be set.
type BroadcastInput struct {
	Title     string
	Message   string
	ProductID string
	ShopID    string
}

// BroadcastResult reports the reach of a broadcast send.
type BroadcastResult struct {
	BroadcastID string `json:"broadcastId"`
	Recipients  int    `json:"recipients"`
	PushSent    int    `json:"pushSent"`
	PushFailed  int    `json:"pushFailed"`
}

// BroadcastUsecase fans an announcement out to every platform user.
type BroadcastUsecase interface {
	Send(ctx context.Context, input *BroadcastInput) (*BroadcastResult, error)
}
