// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/ballotbox/db"
	"github.com/danielhkuo/ballotbox/models"
)

// Driver names registered by the imported SQL drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SQLStore implements VoteStore on database/sql. One mutex serializes every
// call and each mutation runs in its own transaction.
type SQLStore struct {
	mu   sync.Mutex
	conn *sql.DB
}

// OpenSQLStore connects with the given driver and resets the schema.
func OpenSQLStore(ctx context.Context, driverName, dsn string) (*SQLStore, error) {
	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", driverName, err)
	}

	// A single connection keeps an in-memory SQLite database alive and shared.
	conn.SetMaxIdleConns(1)
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := db.ResetSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, err
	}

	return &SQLStore{conn: conn}, nil
}

func (s *SQLStore) Close() error {
	return s.conn.Close()
}

func (s *SQLStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, name, deleted FROM app_user ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Deleted); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *SQLStore) RegisterUser(ctx context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := nextID(ctx, tx, db.SequenceUser)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO app_user (id, name, deleted) VALUES ($1, $2, $3)
	`, id, name, false)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func (s *SQLStore) EditUser(ctx context.Context, id int, name string, deleted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.conn.ExecContext(ctx, `
		UPDATE app_user SET name = $1, deleted = $2 WHERE id = $3
	`, name, deleted, id)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return models.UserNotFound(id)
	}
	return nil
}

func (s *SQLStore) CreatePoll(ctx context.Context, start, end int64, voters []int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	id, err := nextID(ctx, tx, db.SequencePoll)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO poll (id, start_at, end_at) VALUES ($1, $2, $3)
	`, id, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to insert poll: %w", err)
	}

	for i, voter := range voters {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO poll_voter (poll_id, ord, user_id) VALUES ($1, $2, $3)
		`, id, i, voter)
		if err != nil {
			return 0, fmt.Errorf("failed to insert poll voter: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return id, nil
}

func (s *SQLStore) CastChoice(ctx context.Context, by, target, on int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM poll WHERE id = $1`, on).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to query poll: %w", err)
	}
	if exists == 0 {
		return models.PollNotFound(on)
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE choice SET to_user = $1 WHERE poll_id = $2 AND from_user = $3
	`, target, on, by)
	if err != nil {
		return fmt.Errorf("failed to update choice: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}

	if n == 0 {
		var ord int
		err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM choice WHERE poll_id = $1`, on).Scan(&ord)
		if err != nil {
			return fmt.Errorf("failed to count choices: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO choice (poll_id, ord, from_user, to_user) VALUES ($1, $2, $3, $4)
		`, on, ord, by, target)
		if err != nil {
			return fmt.Errorf("failed to insert choice: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) ListPolls(ctx context.Context) ([]models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	polls, index, err := s.queryPolls(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.queryVoters(ctx, polls, index); err != nil {
		return nil, err
	}
	if err := s.queryChoices(ctx, polls, index); err != nil {
		return nil, err
	}
	return polls, nil
}

func (s *SQLStore) queryPolls(ctx context.Context) ([]models.Poll, map[int]int, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, start_at, end_at FROM poll ORDER BY id
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query polls: %w", err)
	}
	defer rows.Close()

	polls := []models.Poll{}
	index := make(map[int]int)
	for rows.Next() {
		p := models.Poll{Voters: []int{}, Votes: []models.Choice{}}
		if err := rows.Scan(&p.ID, &p.Start, &p.End); err != nil {
			return nil, nil, fmt.Errorf("failed to scan poll: %w", err)
		}
		index[p.ID] = len(polls)
		polls = append(polls, p)
	}
	return polls, index, rows.Err()
}

func (s *SQLStore) queryVoters(ctx context.Context, polls []models.Poll, index map[int]int) error {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT poll_id, user_id FROM poll_voter ORDER BY poll_id, ord
	`)
	if err != nil {
		return fmt.Errorf("failed to query poll voters: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pollID, userID int
		if err := rows.Scan(&pollID, &userID); err != nil {
			return fmt.Errorf("failed to scan poll voter: %w", err)
		}
		if i, ok := index[pollID]; ok {
			polls[i].Voters = append(polls[i].Voters, userID)
		}
	}
	return rows.Err()
}

func (s *SQLStore) queryChoices(ctx context.Context, polls []models.Poll, index map[int]int) error {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT poll_id, from_user, to_user FROM choice ORDER BY poll_id, ord
	`)
	if err != nil {
		return fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pollID int
		var c models.Choice
		if err := rows.Scan(&pollID, &c.FromUser, &c.ToUser); err != nil {
			return fmt.Errorf("failed to scan choice: %w", err)
		}
		if i, ok := index[pollID]; ok {
			polls[i].Votes = append(polls[i].Votes, c)
		}
	}
	return rows.Err()
}

// nextID reads and advances a counter in id_sequence.
func nextID(ctx context.Context, tx *sql.Tx, name string) (int, error) {
	var id int
	err := tx.QueryRowContext(ctx, `
		SELECT next_id FROM id_sequence WHERE name = $1
	`, name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s sequence: %w", name, err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE id_sequence SET next_id = $1 WHERE name = $2
	`, id+1, name)
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", name, err)
	}
	return id, nil
}
