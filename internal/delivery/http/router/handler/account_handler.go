package handler

import (
	"log/slog"

	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/response"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for the account handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Delete removes a user from the auth provider and deletes their document.
func (h *AccountHandler) Delete(c echo.Context) error {
	uid := c.Param("id")

	if err := h.uc.DeleteAccount(c.Request().Context(), uid); err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("account deleted", slog.String("uid", uid))

	return response.OK(c, nil, "Account deleted")
}

// SendWelcomeEmail sends the welcome mail to a user.
func (h *AccountHandler) SendWelcomeEmail(c echo.Context) error {
	if err := h.uc.SendWelcomeEmail(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Welcome email queued")
}
