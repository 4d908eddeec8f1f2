// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField = errors.New("missing field")
	ErrTypeMismatch = errors.New("type mismatch")
	ErrNotFound     = errors.New("not found")
)

// FieldError reports which payload field caused a fault.
// Err is always one of the sentinel errors above.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func missing(field string) error {
	return &FieldError{Field: field, Err: ErrMissingField}
}

func mismatch(field string) error {
	return &FieldError{Field: field, Err: ErrTypeMismatch}
}

// UserNotFound returns a NotFound fault for a user id.
func UserNotFound(id int) error {
	return fmt.Errorf("user %d: %w", id, ErrNotFound)
}

// PollNotFound returns a NotFound fault for a poll id.
func PollNotFound(id int) error {
	return fmt.Errorf("poll %d: %w", id, ErrNotFound)
}
