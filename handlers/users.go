// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/ballotbox/events"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

type UserHandler struct {
	store  store.VoteStore
	events events.Publisher
}

func NewUserHandler(s store.VoteStore, p events.Publisher) *UserHandler {
	return &UserHandler{store: s, events: p}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		writeError(w, err, "Failed to list users")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, users)
}

// AddUser handles POST /add_user and responds with the new id as plain text
func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := models.DecodeAddUserRequest(r.Body)
	if err != nil {
		writeError(w, err, "Failed to register user")
		return
	}

	id, err := h.store.RegisterUser(r.Context(), req.Name)
	if err != nil {
		writeError(w, err, "Failed to register user")
		return
	}

	slog.Info("user registered", "user_id", id)
	publish(r.Context(), h.events, events.UserRegistered, events.UserRegisteredPayload{
		UserID: id,
		Name:   req.Name,
	})

	middleware.TextResponse(w, http.StatusOK, strconv.Itoa(id))
}

// EditUser handles POST /edit_user/{id}
func (h *UserHandler) EditUser(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	// Only non-negative int ids route here; anything else is an unknown path
	parsed, err := strconv.ParseUint(r.PathValue("id"), 10, strconv.IntSize-1)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "user not found")
		return
	}
	userID := int(parsed)

	req, err := models.DecodeEditUserRequest(r.Body)
	if err != nil {
		// An unknown user is reported ahead of a bad body
		exists, lookupErr := h.userExists(r.Context(), userID)
		switch {
		case lookupErr != nil:
			err = lookupErr
		case !exists:
			err = models.UserNotFound(userID)
		}
		writeError(w, err, "Failed to edit user")
		return
	}

	if err := h.store.EditUser(r.Context(), userID, req.Name, req.Deleted); err != nil {
		writeError(w, err, "Failed to edit user")
		return
	}

	slog.Info("user edited", "user_id", userID, "deleted", req.Deleted)
	publish(r.Context(), h.events, events.UserEdited, events.UserEditedPayload{
		UserID:  userID,
		Name:    req.Name,
		Deleted: req.Deleted,
	})

	w.WriteHeader(http.StatusOK)
}

func (h *UserHandler) userExists(ctx context.Context, id int) (bool, error) {
	users, err := h.store.ListUsers(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.ID == id {
			return true, nil
		}
	}
	return false, nil
}
