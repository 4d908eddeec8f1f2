// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain types, request decoding, and faults for the API.

# Domain Types

  - User: id, name, deleted (soft delete flag)
  - Poll: id, voters, start, end, votes (serialized as a "vote")
  - Choice: from_user, to_user

Poll.Clone returns a deep copy and is how stores hand polls to callers.

# Request Decoding

Request bodies are decoded field by field so that an absent key and a
mis-shaped value can be told apart:

	req, err := models.DecodeCastVoteRequest(r.Body)
	if errors.Is(err, models.ErrMissingField) { ... }

  - DecodeAddUserRequest: {name}
  - DecodeEditUserRequest: {name, deleted?} ("yes" is the only deleting literal)
  - DecodeCreateVoteRequest: {start, end, voters}
  - DecodeCastVoteRequest: {by, for, on}

# Faults

	ErrMissingField  required payload key absent
	ErrTypeMismatch  payload value of the wrong shape
	ErrNotFound      user or poll id out of range

FieldError wraps the first two with the offending field name.
*/
package models
