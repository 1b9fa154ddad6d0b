package utils

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrIDRequired = errors.New("id is required")
	ErrInvalidID  = errors.New("id must be a positive integer")
)

// ParseID parses a required identifier coming from a form or path.
func ParseID(raw string) (uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrIDRequired
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseOptionalID treats "", absent and "0" as no value.
func ParseOptionalID(raw string) (*uint64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return nil, nil
	}
	id, err := ParseID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// ParseIDs parses a list of identifiers, skipping blanks and collapsing duplicates.
// Order of first occurrence is kept.
func ParseIDs(raws []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(raws))
	for _, raw := range raws {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		id, err := ParseID(raw)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return UniqueUint64(ids), nil
}

// UniqueUint64 removes duplicate values from a slice of uint64
func UniqueUint64(values []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(values))
	result := make([]uint64, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		result = append(result, v)
	}

	return result
}
