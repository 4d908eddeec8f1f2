// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/events"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
)

// statusFor maps a fault to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrMissingField), errors.Is(err, models.ErrTypeMismatch):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// writeError reports err to the client. Internal errors are logged and
// replaced by fallback so driver details never leak.
func writeError(w http.ResponseWriter, err error, fallback string) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error(fallback, "error", err)
		middleware.ErrorResponse(w, status, fallback)
		return
	}
	middleware.ErrorResponse(w, status, err.Error())
}

// publish sends an event for a committed mutation. Failures are logged only:
// the store has already changed and the request still succeeds.
func publish(ctx context.Context, p events.Publisher, t events.Type, payload any) {
	e := events.New(t, payload)
	if err := p.Publish(context.WithoutCancel(ctx), e); err != nil {
		slog.Warn("failed to publish event", "error", err, "event_id", e.ID, "type", t)
	}
}
