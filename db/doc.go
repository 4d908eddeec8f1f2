// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db manages the SQL schema behind store.SQLStore.

# Schema Reset

	err := db.ResetSchema(ctx, conn)

Drops and recreates all tables. The service keeps no state across restarts,
so every open starts from empty tables, even against PostgreSQL.

# Tables

  - id_sequence: next id per entity ("user", "poll")
  - app_user: users with a soft delete flag
  - poll: poll window (start_at, end_at, seconds since epoch)
  - poll_voter: eligible voter ids, ordered by ord
  - choice: (from_user, to_user) per poll, UNIQUE (poll_id, from_user)

Cross references to app_user are not foreign keys; unknown user ids are
stored as given.

# Dialect

The DDL sticks to what SQLite (modernc.org/sqlite) and PostgreSQL
(github.com/lib/pq) both accept, and queries use $N placeholders.
*/
package db
