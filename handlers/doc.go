// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the ballotbox API.

# Handler Types

Each handler is a struct over a store.VoteStore and an events.Publisher:

  - UserHandler: list, register and edit users
  - VoteHandler: create polls, cast choices, list polls

	userHandler := handlers.NewUserHandler(voteStore, publisher)

# Users

	GET  /users          → ListUsers (JSON array, soft-deleted users included)
	POST /add_user       → AddUser (new id as plain text)
	POST /edit_user/{id} → EditUser ("deleted":"yes" soft-deletes; anything else restores)

# Polls

	POST /create_vote → CreateVote (empty body)
	POST /vote        → CastVote (empty body; a repeat cast replaces in place)
	GET  /votes       → ListVotes (JSON array)

# Errors

Store and decoding faults map to statuses by kind:

  - models.ErrMissingField, models.ErrTypeMismatch → 400
  - models.ErrNotFound → 404
  - anything else → 500 with a generic message

Error bodies are models.ErrorResponse.

# Events

After a successful mutation the handler publishes one event. A publish
failure is logged and does not change the response.
*/
package handlers
