// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// ResetSchema drops and recreates every table, then seeds the id sequences.
// State lives only as long as the process, so this runs on every open.
func ResetSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, dropSchema); err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Sequence names in id_sequence.
const (
	SequenceUser = "user"
	SequencePoll = "poll"
)

const dropSchema = `
DROP TABLE IF EXISTS choice;
DROP TABLE IF EXISTS poll_voter;
DROP TABLE IF EXISTS poll;
DROP TABLE IF EXISTS app_user;
DROP TABLE IF EXISTS id_sequence;
`

// Written in the subset of SQL shared by SQLite and PostgreSQL.
const schema = `
-- Id counters
CREATE TABLE id_sequence (
    name TEXT PRIMARY KEY,
    next_id BIGINT NOT NULL
);

INSERT INTO id_sequence (name, next_id) VALUES ('user', 0), ('poll', 0);

-- Users
CREATE TABLE app_user (
    id BIGINT PRIMARY KEY,
    name TEXT NOT NULL,
    deleted BOOLEAN NOT NULL DEFAULT FALSE
);

-- Polls
CREATE TABLE poll (
    id BIGINT PRIMARY KEY,
    start_at BIGINT NOT NULL,
    end_at BIGINT NOT NULL
);

-- Eligible voters, in the order given at creation
CREATE TABLE poll_voter (
    poll_id BIGINT NOT NULL REFERENCES poll(id),
    ord INTEGER NOT NULL,
    user_id BIGINT NOT NULL,
    PRIMARY KEY (poll_id, ord)
);

-- Choices, one per voter per poll, in first-cast order
CREATE TABLE choice (
    poll_id BIGINT NOT NULL REFERENCES poll(id),
    ord INTEGER NOT NULL,
    from_user BIGINT NOT NULL,
    to_user BIGINT NOT NULL,
    PRIMARY KEY (poll_id, ord),
    UNIQUE (poll_id, from_user)
);

CREATE INDEX idx_choice_poll_id ON choice(poll_id);
`
