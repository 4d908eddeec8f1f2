// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/danielhkuo/ballotbox/models"
)

// VoteStore holds every user and poll. Each call is atomic: it either
// completes or fails without changing anything.
type VoteStore interface {
	// ListUsers returns all users, soft-deleted ones included, in creation order.
	ListUsers(ctx context.Context) ([]models.User, error)

	// RegisterUser appends a user and returns its id.
	RegisterUser(ctx context.Context, name string) (int, error)

	// EditUser overwrites the name and deleted flag of an existing user.
	EditUser(ctx context.Context, id int, name string, deleted bool) error

	// CreatePoll appends a poll with no choices and returns its id.
	// Voter ids are stored as given.
	CreatePoll(ctx context.Context, start, end int64, voters []int) (int, error)

	// CastChoice records that voter by picks target on poll on. A voter's
	// earlier choice is overwritten in place, otherwise the choice is appended.
	CastChoice(ctx context.Context, by, target, on int) error

	// ListPolls returns all polls with their choices, in creation order.
	ListPolls(ctx context.Context) ([]models.Poll, error)
}
