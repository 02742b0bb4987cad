package impl

import (
	"context"
	"log/slog"

	domainerrors "github.com/tkndbj/nar24admin-sub002/internal/domain/errors"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/repository"
	"github.com/tkndbj/nar24admin-sub002/internal/domain/service"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type accountService struct {
	userRepo repository.UserRepository
	deleter  service.AccountDeleter
	mail     service.MailService
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Deleter  service.AccountDeleter
	Mail     service.MailService `optional:"true"`
	Logger   *slog.Logger
}

// NewAccountService creates the admin account operations service.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo: params.UserRepo,
		deleter:  params.Deleter,
		mail:     params.Mail,
		logger:   params.Logger,
	}
}

// DeleteAccount removes the auth account first, then the user document. A
// failure in either step is surfaced: the operator must see that the
// deletion did not complete.
func (s *accountService) DeleteAccount(ctx context.Context, uid string) error {
	if _, err := s.userRepo.FindByID(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user")
	}

	if err := s.deleter.DeleteUser(ctx, uid); err != nil {
		s.logger.Error("auth account deletion failed",
			slog.String("uid", uid),
			slog.Any("error", err),
		)

		return domainerrors.ErrAccountDeleteFailed.WithDetails(err.Error())
	}

	if err := s.userRepo.Delete(ctx, uid); err != nil {
		return domainerrors.ErrAccountDeleteFailed.WithDetails(err.Error())
	}

	return nil
}

// SendWelcomeEmail sends the welcome mail. A mail provider failure is logged
// and swallowed; the admin action still succeeds.
func (s *accountService) SendWelcomeEmail(ctx context.Context, uid string) error {
	user, err := s.userRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user")
	}

	if s.mail == nil {
		s.logger.Info("mail service not configured, skipping welcome email",
			slog.String("uid", uid),
		)

		return nil
	}

	if err := s.mail.SendWelcome(ctx, user.Email, user.DisplayName); err != nil {
		s.logger.Warn("welcome email failed",
			slog.String("uid", uid),
			slog.Any("error", err),
		)
	}

	return nil
}
