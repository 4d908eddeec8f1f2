// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/ballotbox/events"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/models"
	"github.com/danielhkuo/ballotbox/store"
)

type VoteHandler struct {
	store  store.VoteStore
	events events.Publisher
}

func NewVoteHandler(s store.VoteStore, p events.Publisher) *VoteHandler {
	return &VoteHandler{store: s, events: p}
}

// CreateVote handles POST /create_vote. The new poll id is logged and
// published but not returned; clients read it back from GET /votes.
func (h *VoteHandler) CreateVote(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := models.DecodeCreateVoteRequest(r.Body)
	if err != nil {
		writeError(w, err, "Failed to create vote")
		return
	}

	pollID, err := h.store.CreatePoll(r.Context(), req.Start, req.End, req.Voters)
	if err != nil {
		writeError(w, err, "Failed to create vote")
		return
	}

	slog.Info("poll created", "poll_id", pollID, "voters", len(req.Voters), "start", req.Start, "end", req.End)
	publish(r.Context(), h.events, events.PollCreated, events.PollCreatedPayload{
		PollID: pollID,
		Voters: req.Voters,
		Start:  req.Start,
		End:    req.End,
	})

	w.WriteHeader(http.StatusOK)
}

// CastVote handles POST /vote
func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	req, err := models.DecodeCastVoteRequest(r.Body)
	if err != nil {
		writeError(w, err, "Failed to cast vote")
		return
	}

	if err := h.store.CastChoice(r.Context(), req.By, req.For, req.On); err != nil {
		writeError(w, err, "Failed to cast vote")
		return
	}

	slog.Info("choice cast", "poll_id", req.On, "from_user", req.By, "to_user", req.For)
	publish(r.Context(), h.events, events.ChoiceCast, events.ChoiceCastPayload{
		PollID:   req.On,
		FromUser: req.By,
		ToUser:   req.For,
	})

	w.WriteHeader(http.StatusOK)
}

// ListVotes handles GET /votes
func (h *VoteHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	polls, err := h.store.ListPolls(r.Context())
	if err != nil {
		writeError(w, err, "Failed to list votes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, polls)
}
