// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"context"

	"github.com/danielhkuo/habits/models"
)

// Summary lists, oldest first, every day that ever had a completion with
// its completed and due counts.
func (s *Service) Summary(ctx context.Context) ([]models.SummaryDay, error) {
	return s.store.AggregateSummary(ctx)
}
