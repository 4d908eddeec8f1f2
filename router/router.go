// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/ballotbox/events"
	"github.com/danielhkuo/ballotbox/handlers"
	"github.com/danielhkuo/ballotbox/middleware"
	"github.com/danielhkuo/ballotbox/store"
)

func NewRouter(s store.VoteStore, p events.Publisher) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	userHandler := handlers.NewUserHandler(s, p)
	voteHandler := handlers.NewVoteHandler(s, p)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Users
	mux.HandleFunc("GET /users", middleware.WithLogging(userHandler.ListUsers))
	mux.HandleFunc("POST /add_user", middleware.WithLogging(userHandler.AddUser))
	mux.HandleFunc("POST /edit_user/{id}", middleware.WithLogging(userHandler.EditUser))

	// Polls and choices
	mux.HandleFunc("POST /create_vote", middleware.WithLogging(voteHandler.CreateVote))
	mux.HandleFunc("POST /vote", middleware.WithLogging(voteHandler.CastVote))
	mux.HandleFunc("GET /votes", middleware.WithLogging(voteHandler.ListVotes))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ballotbox API v1"))
	})

	// CORS answers OPTIONS for every path before routing
	return middleware.CORS(mux)
}
