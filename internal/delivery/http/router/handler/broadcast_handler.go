package handler

import (
	"log/slog"
	"net/http"

	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/response"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BroadcastHandler holds dependencies for the broadcast handlers.
type BroadcastHandler struct {
	uc     usecase.BroadcastUsecase
	logger *slog.Logger
}

// NewBroadcastHandler is the constructor for BroadcastHandler, injected by Fx.
func NewBroadcastHandler(uc usecase.BroadcastUsecase, logger *slog.Logger) *BroadcastHandler {
	return &BroadcastHandler{
		uc:     uc,
		logger: logger,
	}
}

// broadcastInput is the body of a broadcast request. ProductID and ShopID
// are mutually exclusive; the usecase enforces that.
type broadcastInput struct {
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message" validate:"required"`
	ProductID string `json:"productId"`
	ShopID    string `json:"shopId"`
}

// Send fans a notification out to every user.
func (h *BroadcastHandler) Send(c echo.Context) error {
	var input broadcastInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	if err := c.Validate(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Title and message are required")
	}

	result, err := h.uc.Send(c.Request().Context(), &usecase.BroadcastInput{
		Title:     input.Title,
		Message:   input.Message,
		ProductID: input.ProductID,
		ShopID:    input.ShopID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Broadcast sent")
}
