package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/tkndbj/nar24admin-sub002/config"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushChunkSize is the FCM multicast limit per request.
const pushChunkSize = 500

type broadcastService struct {
	userRepo         repository.UserRepository
	notificationRepo repository.NotificationRepository
	push             service.PushService
	config           *config.Config
	logger           *slog.Logger
	now              func() time.Time
}

// BroadcastServiceParams holds dependencies for BroadcastService, injected by Fx.
type BroadcastServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	NotificationRepo repository.NotificationRepository
	Push             service.PushService `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewBroadcastService creates the broadcast fan-out service.
func NewBroadcastService(params BroadcastServiceParams) usecase.BroadcastUsecase {
	return &broadcastService{
		userRepo:         params.UserRepo,
		notificationRepo: params.NotificationRepo,
		push:             params.Push,
		config:           params.Config,
		logger:           params.Logger,
		now:              time.Now,
	}
}

// Send writes one notification document per user, records the broadcast, and
// then pushes to the collected device tokens. The pushes are best-effort.
func (s *broadcastService) Send(ctx context.Context, input *usecase.BroadcastInput) (*usecase.BroadcastResult, error) {
	if input.ProductID != "" && input.ShopID != "" {
		return nil, domainerrors.ErrInvalidBroadcast
	}

	broadcastID := uuid.NewString()
	now := s.now()
	notification := &entity.Notification{
		ID:        broadcastID,
		Type:      entity.NotificationBroadcast,
		Title:     input.Title,
		Message:   input.Message,
		ProductID: input.ProductID,
		ShopID:    input.ShopID,
		CreatedAt: now,
	}

	recipients := 0
	var tokens []string
	cursor := ""
	pageSize := s.config.Moderation.BroadcastPageSize

	for {
		users, err := s.userRepo.ListPage(ctx, cursor, pageSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list users")
		}
		if len(users) == 0 {
			break
		}

		userIDs := make([]string, 0, len(users))
		for _, user := range users {
			userIDs = append(userIDs, user.ID)
			tokens = append(tokens, user.FCMTokens...)
		}

		if err := s.notificationRepo.FanOut(ctx, userIDs, notification); err != nil {
			return nil, errors.Wrap(err, "failed to fan out notifications")
		}
		recipients += len(userIDs)

		cursor = users[len(users)-1].ID
		if len(users) < pageSize {
			break
		}
	}

	broadcast := &entity.Broadcast{
		ID:         broadcastID,
		Title:      input.Title,
		Message:    input.Message,
		ProductID:  input.ProductID,
		ShopID:     input.ShopID,
		Recipients: recipients,
		CreatedAt:  now,
	}
	if err := s.notificationRepo.CreateBroadcast(ctx, broadcast); err != nil {
		return nil, errors.Wrap(err, "failed to record broadcast")
	}

	sent, failed := s.pushToTokens(ctx, tokens, input)

	return &usecase.BroadcastResult{
		BroadcastID: broadcastID,
		Recipients:  recipients,
		PushSent:    sent,
		PushFailed:  failed,
	}, nil
}

// pushToTokens sends the broadcast as mobile push in multicast chunks.
// Push failures never fail the broadcast.
func (s *broadcastService) pushToTokens(ctx context.Context, tokens []string, input *usecase.BroadcastInput) (sent, failed int) {
	if s.push == nil || len(tokens) == 0 {
		return 0, 0
	}

	data := map[string]string{"type": string(entity.NotificationBroadcast)}
	if input.ProductID != "" {
		data["productId"] = input.ProductID
	}
	if input.ShopID != "" {
		data["shopId"] = input.ShopID
	}

	for start := 0; start < len(tokens); start += pushChunkSize {
		end := min(start+pushChunkSize, len(tokens))

		chunkSent, chunkFailed, invalid, err := s.push.SendBatchNotification(ctx, tokens[start:end], input.Title, input.Message, data)
		if err != nil {
			s.logger.Warn("broadcast push chunk failed",
				slog.Int("chunk_size", end-start),
				slog.Any("error", err),
			)
			failed += end - start

			continue
		}

		sent += chunkSent
		failed += chunkFailed
		if len(invalid) > 0 {
			s.logger.Info("broadcast push skipped invalid tokens",
				slog.Int("invalid_tokens", len(invalid)),
			)
		}
	}

	return sent, failed
}
