// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds users and polls behind the VoteStore interface.

# Implementations

  - MemoryStore: slices and counters behind one sync.Mutex (default)
  - SQLStore: database/sql with SQLite (modernc.org/sqlite) or PostgreSQL (lib/pq)

	s := store.NewMemoryStore()
	s, err := store.OpenSQLStore(ctx, store.DriverSQLite, ":memory:")

Both serialize every call, so id assignment and the read-modify-write in
CastChoice never interleave. SQLStore resets its schema on open.

# Invariants

  - User and poll ids start at 0, are sequential, and equal creation order.
  - Users are never removed; EditUser only toggles the deleted flag.
  - A poll holds at most one choice per voter. CastChoice overwrites an
    existing choice in place and appends otherwise.
  - Voter and target ids are not checked against registered users, and the
    start/end window is not enforced.

# Faults

EditUser and CastChoice return errors wrapping models.ErrNotFound for ids out
of range. SQLStore may also return driver errors.
*/
package store
