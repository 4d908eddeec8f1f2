// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the ballotbox API.

# Usage

	handler := router.NewRouter(voteStore, publisher)
	server := http.Server{Handler: handler, Addr: cfg.Addr()}

NewRouter returns the route table wrapped in middleware.CORS.

# Routes

	GET  /health          → health check ("OK")
	GET  /users           → UserHandler.ListUsers
	POST /add_user        → UserHandler.AddUser (plain-text id)
	POST /edit_user/{id}  → UserHandler.EditUser
	POST /create_vote     → VoteHandler.CreateVote
	POST /vote            → VoteHandler.CastVote
	GET  /votes           → VoteHandler.ListVotes
	GET  /                → API banner
	OPTIONS *             → CORS preflight (200, empty)

API routes are wrapped with middleware.WithLogging. Routing uses Go 1.22+
method and wildcard patterns; a known path with the wrong method gets 405.
*/
package router
