// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ids

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrInvalidID = errors.New("invalid id format")

// New returns a random UUID string
func New() string {
	return uuid.NewString()
}

// Parse checks that id is a hyphenated UUID and returns its lowercase form.
// Braced and urn: forms accepted by uuid.Parse are rejected.
func Parse(id string) (string, error) {
	if len(id) != 36 {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return u.String(), nil
}
