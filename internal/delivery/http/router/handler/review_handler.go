// Package handler contains the HTTP handlers for the admin console.
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tkndbj/nar24admin-sub002/internal/delivery/http/response"
	"github.com/tkndbj/nar24admin-sub002/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for the moderation queue handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// rejectInput is the optional body of a reject request.
type rejectInput struct {
	Reason string `json:"reason"`
}

// queueSummary is the list representation of one moderation queue.
type queueSummary struct {
	Name         string `json:"name"`
	IndexEnabled bool   `json:"indexEnabled"`
}

// Queues lists the available moderation queues.
func (h *ReviewHandler) Queues(c echo.Context) error {
	queues := h.uc.Queues()
	summaries := make([]queueSummary, 0, len(queues))
	for _, q := range queues {
		summaries = append(summaries, queueSummary{Name: q.Name, IndexEnabled: q.IndexEnabled})
	}

	return response.OK(c, summaries, "")
}

// ListPending returns the pending submissions of a queue, newest first.
func (h *ReviewHandler) ListPending(c echo.Context) error {
	submissions, err := h.uc.ListPending(c.Request().Context(), c.Param("queue"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, submissions, "")
}

// StreamPending streams pending-set snapshots of a queue as server-sent
// events. Each event carries the full current pending list, so a dropped
// event never leaves the client stale.
func (h *ReviewHandler) StreamPending(c echo.Context) error {
	ctx := c.Request().Context()

	updates, err := h.uc.WatchPending(ctx, c.Param("queue"))
	if err != nil {
		return errors.WithStack(err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-ctx.Done():
			return nil
		case submissions, ok := <-updates:
			if !ok {
				return nil
			}

			payload, err := json.Marshal(submissions)
			if err != nil {
				h.logger.Error("failed to encode pending snapshot", slog.Any("error", err))

				continue
			}

			if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// Get returns one submission for detail review.
func (h *ReviewHandler) Get(c echo.Context) error {
	submission, err := h.uc.Get(c.Request().Context(), c.Param("queue"), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, submission, "")
}

// Approve promotes a pending submission, or reports the duplicate flip.
func (h *ReviewHandler) Approve(c echo.Context) error {
	decision, err := h.uc.Approve(c.Request().Context(), c.Param("queue"), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	message := "Submission approved"
	if decision.Outcome == usecase.OutcomeDuplicate {
		message = "Submission marked as duplicate of an existing record"
	}

	return response.OK(c, decision, message)
}

// Reject marks a pending submission rejected.
func (h *ReviewHandler) Reject(c echo.Context) error {
	var input rejectInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid reject input")
	}

	if err := h.uc.Reject(c.Request().Context(), c.Param("queue"), c.Param("id"), input.Reason); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, nil, "Submission rejected")
}
