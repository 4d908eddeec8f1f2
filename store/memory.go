// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/danielhkuo/ballotbox/models"
)

// MemoryStore keeps users and polls in append-only slices behind one mutex.
// Ids come from counters and always equal the slice position.
type MemoryStore struct {
	mu         sync.Mutex
	users      []models.User
	polls      []models.Poll
	nextUserID int
	nextPollID int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *MemoryStore) RegisterUser(ctx context.Context, name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextUserID
	s.users = append(s.users, models.User{ID: id, Name: name})
	s.nextUserID++
	return id, nil
}

func (s *MemoryStore) EditUser(ctx context.Context, id int, name string, deleted bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id < 0 || id >= len(s.users) {
		return models.UserNotFound(id)
	}

	u := &s.users[id]
	u.Name = name
	u.Deleted = deleted
	return nil
}

func (s *MemoryStore) CreatePoll(ctx context.Context, start, end int64, voters []int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextPollID
	p := models.Poll{ID: id, Voters: voters, Start: start, End: end}
	s.polls = append(s.polls, p.Clone())
	s.nextPollID++
	return id, nil
}

func (s *MemoryStore) CastChoice(ctx context.Context, by, target, on int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if on < 0 || on >= len(s.polls) {
		return models.PollNotFound(on)
	}

	p := &s.polls[on]
	for i := range p.Votes {
		if p.Votes[i].FromUser == by {
			p.Votes[i].ToUser = target
			return nil
		}
	}
	p.Votes = append(p.Votes, models.Choice{FromUser: by, ToUser: target})
	return nil
}

func (s *MemoryStore) ListPolls(ctx context.Context) ([]models.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Poll, len(s.polls))
	for i, p := range s.polls {
		out[i] = p.Clone()
	}
	return out, nil
}
