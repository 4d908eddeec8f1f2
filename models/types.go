// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// DeletedYes is the only literal of the "deleted" field that soft-deletes a user.
// Any other value, including an absent field, leaves the user active.
const DeletedYes = "yes"

// Request types

type AddUserRequest struct {
	Name string
}

type EditUserRequest struct {
	Name    string
	Deleted bool
}

type CreateVoteRequest struct {
	Start  int64
	End    int64
	Voters []int
}

type CastVoteRequest struct {
	By  int
	For int
	On  int
}

// Domain types

type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}

// Choice is one voter's current selection within a poll.
type Choice struct {
	FromUser int `json:"from_user"`
	ToUser   int `json:"to_user"`
}

// Poll is serialized as a "vote" on the wire.
// Start and End are seconds since the epoch and are never enforced.
type Poll struct {
	ID     int      `json:"id"`
	Voters []int    `json:"voters"`
	Start  int64    `json:"start"`
	End    int64    `json:"end"`
	Votes  []Choice `json:"votes"`
}

// Clone returns a deep copy of p. Nil slices come back empty so they
// encode as [] rather than null.
func (p Poll) Clone() Poll {
	out := p
	out.Voters = append(make([]int, 0, len(p.Voters)), p.Voters...)
	out.Votes = append(make([]Choice, 0, len(p.Votes)), p.Votes...)
	return out
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
