package handler

import (
	"log/slog"

	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/response"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TicketHandler holds dependencies for the support ticket handlers.
type TicketHandler struct {
	uc     usecase.TicketUsecase
	logger *slog.Logger
}

// NewTicketHandler is the constructor for TicketHandler, injected by Fx.
func NewTicketHandler(uc usecase.TicketUsecase, logger *slog.Logger) *TicketHandler {
	return &TicketHandler{
		uc:     uc,
		logger: logger,
	}
}

// answerInput is the body of a ticket answer request.
type answerInput struct {
	Answer string `json:"answer" validate:"required"`
}

// ListOpen returns all tickets awaiting an answer.
func (h *TicketHandler) ListOpen(c echo.Context) error {
	tickets, err := h.uc.ListOpen(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, tickets, "")
}

// Answer records an answer on a ticket.
func (h *TicketHandler) Answer(c echo.Context) error {
	var input answerInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid answer input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Answer is required")
	}

	if err := h.uc.Answer(c.Request().Context(), c.Param("id"), input.Answer); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Ticket answered")
}

// Close closes a ticket without an answer.
func (h *TicketHandler) Close(c echo.Context) error {
	if err := h.uc.Close(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Ticket closed")
}
