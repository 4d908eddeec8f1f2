// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	UserRegistered Type = "user.registered"
	UserEdited     Type = "user.edited"
	PollCreated    Type = "poll.created"
	ChoiceCast     Type = "choice.cast"
)

// Event describes a committed mutation of the store.
type Event struct {
	ID      string    `json:"id"`
	Type    Type      `json:"type"`
	At      time.Time `json:"at"`
	Payload any       `json:"payload"`
}

func New(t Type, payload any) Event {
	return Event{
		ID:      uuid.NewString(),
		Type:    t,
		At:      time.Now().UTC(),
		Payload: payload,
	}
}

// Publisher delivers events outside the process. Implementations must be
// safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, e Event) error { return nil }

func (NopPublisher) Close() error { return nil }

// Payloads

type UserRegisteredPayload struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
}

type UserEditedPayload struct {
	UserID  int    `json:"user_id"`
	Name    string `json:"name"`
	Deleted bool   `json:"deleted"`
}

type PollCreatedPayload struct {
	PollID int   `json:"poll_id"`
	Voters []int `json:"voters"`
	Start  int64 `json:"start"`
	End    int64 `json:"end"`
}

type ChoiceCastPayload struct {
	PollID   int `json:"poll_id"`
	FromUser int `json:"from_user"`
	ToUser   int `json:"to_user"`
}
