// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
)

// DecodeAddUserRequest parses a POST /add_user body.
// The body must be an object of string values.
func DecodeAddUserRequest(r io.Reader) (AddUserRequest, error) {
	fields, err := decodeStringObject(r)
	if err != nil {
		return AddUserRequest{}, err
	}

	name, ok := fields["name"]
	if !ok {
		return AddUserRequest{}, missing("name")
	}

	return AddUserRequest{Name: name}, nil
}

// DecodeEditUserRequest parses a POST /edit_user/{id} body.
// Only the exact literal "yes" marks the user deleted.
func DecodeEditUserRequest(r io.Reader) (EditUserRequest, error) {
	fields, err := decodeStringObject(r)
	if err != nil {
		return EditUserRequest{}, err
	}

	name, ok := fields["name"]
	if !ok {
		return EditUserRequest{}, missing("name")
	}

	deleted, ok := fields["deleted"]
	if !ok {
		deleted = "no"
	}

	return EditUserRequest{Name: name, Deleted: deleted == DeletedYes}, nil
}

// DecodeCreateVoteRequest parses a POST /create_vote body.
// Negative start and end timestamps are clamped to zero.
func DecodeCreateVoteRequest(r io.Reader) (CreateVoteRequest, error) {
	fields, err := decodeObject(r)
	if err != nil {
		return CreateVoteRequest{}, err
	}

	start, err := intField(fields, "start")
	if err != nil {
		return CreateVoteRequest{}, err
	}
	end, err := intField(fields, "end")
	if err != nil {
		return CreateVoteRequest{}, err
	}

	raw, ok := fields["voters"]
	if !ok {
		return CreateVoteRequest{}, missing("voters")
	}
	list, ok := raw.([]any)
	if !ok {
		return CreateVoteRequest{}, mismatch("voters")
	}

	voters := make([]int, 0, len(list))
	for _, v := range list {
		id, ok := asID(v)
		if !ok {
			return CreateVoteRequest{}, mismatch("voters")
		}
		voters = append(voters, id)
	}

	return CreateVoteRequest{
		Start:  max(start, 0),
		End:    max(end, 0),
		Voters: voters,
	}, nil
}

// DecodeCastVoteRequest parses a POST /vote body.
func DecodeCastVoteRequest(r io.Reader) (CastVoteRequest, error) {
	fields, err := decodeObject(r)
	if err != nil {
		return CastVoteRequest{}, err
	}

	var req CastVoteRequest
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"by", &req.By},
		{"for", &req.For},
		{"on", &req.On},
	} {
		raw, ok := fields[f.name]
		if !ok {
			return CastVoteRequest{}, missing(f.name)
		}
		id, ok := asID(raw)
		if !ok {
			return CastVoteRequest{}, mismatch(f.name)
		}
		*f.dst = id
	}

	return req, nil
}

func decodeObject(r io.Reader) (map[string]any, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, mismatch("body")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var fields map[string]any
	if err := dec.Decode(&fields); err != nil || fields == nil {
		return nil, mismatch("body")
	}

	// Exactly one value per body
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, mismatch("body")
	}
	return fields, nil
}

func decodeStringObject(r io.Reader) (map[string]string, error) {
	fields, err := decodeObject(r)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(fields))
	for k, v := range fields {
		s, ok := v.(string)
		if !ok {
			return nil, mismatch(k)
		}
		out[k] = s
	}
	return out, nil
}

func intField(fields map[string]any, name string) (int64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, missing(name)
	}
	n, ok := raw.(json.Number)
	if !ok {
		return 0, mismatch(name)
	}
	v, err := n.Int64()
	if err != nil {
		return 0, mismatch(name)
	}
	return v, nil
}

// asID accepts a JSON integer that fits a non-negative int.
func asID(v any) (int, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := n.Int64()
	if err != nil || i < 0 || i > math.MaxInt {
		return 0, false
	}
	return int(i), true
}
