package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/tkndbj/nar24admin-sub002/internal/domain/entity"
	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"
	mockRepo "github.com/tkndbj/nar24admin-sub002/internal/mocks/repository"
	mockSvc "github.com/tkndbj/nar24admin-sub002/internal/mocks/service"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account tests.
type accountServiceFixtures struct {
	service  usecase.AccountUsecase
	userRepo *mockRepo.MockUserRepository
	deleter  *mockSvc.MockAccountDeleter
	mail     *mockSvc.MockMailService
}

func createTestAccountService(t *testing.T, withMail bool) accountServiceFixtures {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	deleter := mockSvc.NewMockAccountDeleter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var mail *mockSvc.MockMailService
	params := AccountServiceParams{
		UserRepo: userRepo,
		Deleter:  deleter,
		Logger:   logger,
	}
	if withMail {
		mail = mockSvc.NewMockMailService(t)
		params.Mail = mail
	}

	return accountServiceFixtures{
		service:  NewAccountService(params),
		userRepo: userRepo,
		deleter:  deleter,
		mail:     mail,
	}
}

func TestDeleteAccountRemovesAuthThenDocument(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestAccountService(t, false)

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil)
	fx.deleter.EXPECT().DeleteUser(ctx, "u1").Return(nil)
	fx.userRepo.EXPECT().Delete(ctx, "u1").Return(nil)

	require.NoError(t, fx.service.DeleteAccount(ctx, "u1"))
}

func TestDeleteAccountUnknownUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestAccountService(t, false)

	fx.userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	err := fx.service.DeleteAccount(ctx, "ghost")
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestDeleteAccountAuthFailureIsSurfaced(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestAccountService(t, false)

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil)
	fx.deleter.EXPECT().DeleteUser(ctx, "u1").Return(errors.New("auth backend down"))

	err := fx.service.DeleteAccount(ctx, "u1")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "ACCOUNT_DELETE_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "auth backend down")
}

func TestSendWelcomeEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestAccountService(t, true)

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{
		ID:          "u1",
		Email:       "ayse@example.com",
		DisplayName: "Ayşe",
	}, nil)
	fx.mail.EXPECT().SendWelcome(ctx, "ayse@example.com", "Ayşe").Return(nil)

	require.NoError(t, fx.service.SendWelcomeEmail(ctx, "u1"))
}

func TestSendWelcomeEmailMailFailureIsSwallowed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestAccountService(t, true)

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1", Email: "a@b.c"}, nil)
	fx.mail.EXPECT().SendWelcome(ctx, "a@b.c", "").Return(errors.New("provider rejected"))

	// The admin action still succeeds; the failure is only logged.
	require.NoError(t, fx.service.SendWelcomeEmail(ctx, "u1"))
}

func TestSendWelcomeEmailWithoutMailProvider(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestAccountService(t, false)

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.User{ID: "u1"}, nil)

	require.NoError(t, fx.service.SendWelcomeEmail(ctx, "u1"))
}

func TestSendWelcomeEmailUnknownUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	fx := createTestAccountService(t, true)

	fx.userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	err := fx.service.SendWelcomeEmail(ctx, "ghost")
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
