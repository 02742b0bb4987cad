package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/tkndbj/nar24admin-sub002/config"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"
	mockRepo "github.com/tkndbj/nar24admin-sub002/internal/mocks/repository"
	mockSvc "github.com/tkndbj/nar24admin-sub002/internal/mocks/service"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// broadcastServiceFixtures holds all test dependencies for broadcast tests.
type broadcastServiceFixtures struct {
	service          usecase.BroadcastUsecase
	userRepo         *mockRepo.MockUserRepository
	notificationRepo *mockRepo.MockNotificationRepository
	push             *mockSvc.MockPushService
}

func createTestBroadcastService(t *testing.T, pageSize int) broadcastServiceFixtures {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	push := mockSvc.NewMockPushService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.Moderation.BroadcastPageSize = pageSize

	service := NewBroadcastService(BroadcastServiceParams{
		UserRepo:         userRepo,
		NotificationRepo: notificationRepo,
		Push:             push,
		Config:           cfg,
		Logger:           logger,
	})

	return broadcastServiceFixtures{
		service:          service,
		userRepo:         userRepo,
		notificationRepo: notificationRepo,
		push:             push,
	}
}

func testUsers(ids ...string) []*entity.User {
	users := make([]*entity.User, 0, len(ids))
	for _, id := range ids {
		users = append(users, &entity.User{ID: id, FCMTokens: []string{"token-" + id}})
	}

	return users
}

func TestBroadcastSendWalksAllPages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestBroadcastService(t, 2)

	// Two full pages and one short page, cursored by the last user key.
	fx.userRepo.EXPECT().ListPage(ctx, "", 2).Return(testUsers("u1", "u2"), nil)
	fx.userRepo.EXPECT().ListPage(ctx, "u2", 2).Return(testUsers("u3", "u4"), nil)
	fx.userRepo.EXPECT().ListPage(ctx, "u4", 2).Return(testUsers("u5"), nil)

	fx.notificationRepo.EXPECT().FanOut(ctx, []string{"u1", "u2"}, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().FanOut(ctx, []string{"u3", "u4"}, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().FanOut(ctx, []string{"u5"}, mock.Anything).Return(nil)

	fx.notificationRepo.EXPECT().
		CreateBroadcast(ctx, mock.AnythingOfType("*entity.Broadcast")).
		Run(func(_ context.Context, broadcast *entity.Broadcast) {
			assert.Equal(t, 5, broadcast.Recipients)
			assert.Equal(t, "Sale", broadcast.Title)
		}).
		Return(nil)

	fx.push.EXPECT().
		SendBatchNotification(ctx, mock.Anything, "Sale", "Everything half off", mock.Anything).
		Return(5, 0, nil, nil)

	result, err := fx.service.Send(ctx, &usecase.BroadcastInput{Title: "Sale", Message: "Everything half off"})
	require.NoError(t, err)
	assert.Equal(t, 5, result.Recipients)
	assert.Equal(t, 5, result.PushSent)
	assert.Zero(t, result.PushFailed)
	assert.NotEmpty(t, result.BroadcastID)
}

func TestBroadcastSendRejectsBothReferences(t *testing.T) {
	t.Parallel()
	fx := createTestBroadcastService(t, 100)

	_, err := fx.service.Send(context.Background(), &usecase.BroadcastInput{
		Title:     "Sale",
		Message:   "m",
		ProductID: "p1",
		ShopID:    "s1",
	})
	require.ErrorIs(t, err, domainerrors.ErrInvalidBroadcast)
}

func TestBroadcastSendCarriesSingleReference(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestBroadcastService(t, 100)

	fx.userRepo.EXPECT().ListPage(ctx, "", 100).Return(testUsers("u1"), nil)
	fx.notificationRepo.EXPECT().
		FanOut(ctx, []string{"u1"}, mock.AnythingOfType("*entity.Notification")).
		Run(func(_ context.Context, _ []string, notification *entity.Notification) {
			assert.Equal(t, "p1", notification.ProductID)
			assert.Empty(t, notification.ShopID)
		}).
		Return(nil)
	fx.notificationRepo.EXPECT().CreateBroadcast(ctx, mock.Anything).Return(nil)
	fx.push.EXPECT().
		SendBatchNotification(ctx, []string{"token-u1"}, "New", "Check it out", map[string]string{
			"type":      string(entity.NotificationBroadcast),
			"productId": "p1",
		}).
		Return(1, 0, nil, nil)

	_, err := fx.service.Send(ctx, &usecase.BroadcastInput{Title: "New", Message: "Check it out", ProductID: "p1"})
	require.NoError(t, err)
}

func TestBroadcastSendPushFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestBroadcastService(t, 100)

	fx.userRepo.EXPECT().ListPage(ctx, "", 100).Return(testUsers("u1", "u2"), nil)
	fx.notificationRepo.EXPECT().FanOut(ctx, mock.Anything, mock.Anything).Return(nil)
	fx.notificationRepo.EXPECT().CreateBroadcast(ctx, mock.Anything).Return(nil)
	fx.push.EXPECT().
		SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unreachable"))

	result, err := fx.service.Send(ctx, &usecase.BroadcastInput{Title: "t", Message: "m"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Recipients)
	assert.Equal(t, 2, result.PushFailed)
}

func TestBroadcastSendFanOutFailureIsFatal(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestBroadcastService(t, 100)

	fx.userRepo.EXPECT().ListPage(ctx, "", 100).Return(testUsers("u1"), nil)
	fx.notificationRepo.EXPECT().FanOut(ctx, mock.Anything, mock.Anything).Return(errors.New("batch write failed"))

	_, err := fx.service.Send(ctx, &usecase.BroadcastInput{Title: "t", Message: "m"})
	require.Error(t, err)
}

func TestBroadcastSendNoUsers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestBroadcastService(t, 100)

	fx.userRepo.EXPECT().ListPage(ctx, "", 100).Return(nil, nil)
	fx.notificationRepo.EXPECT().CreateBroadcast(ctx, mock.Anything).Return(nil)

	result, err := fx.service.Send(ctx, &usecase.BroadcastInput{Title: "t", Message: "m"})
	require.NoError(t, err)
	assert.Zero(t, result.Recipients)
	assert.Zero(t, result.PushSent)
}
