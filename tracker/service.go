// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/danielhkuo/habits/calendar"
	"github.com/danielhkuo/habits/store"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("habit not found")
)

type Service struct {
	store    store.Store
	resolver *calendar.Resolver

	// toggles coalesces concurrent toggles of the same habit on the same day
	toggles singleflight.Group
}

func NewService(st store.Store, resolver *calendar.Resolver) *Service {
	return &Service{store: st, resolver: resolver}
}

// Resolver returns the resolver used for "today" and for parsed dates.
func (s *Service) Resolver() *calendar.Resolver {
	return s.resolver
}
