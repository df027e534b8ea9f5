// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package statsuc contains the interaction statistics UseCase. It
// wraps an injected stats.Tracker instance and adds the input policy
// which the tracker itself does not enforce, namely the bounds check
// of the trends range. The tracker state lives in process memory
// only, so all analytics reset when the process restarts; a
// persistent tracker backend may replace the injected instance if
// that trade-off is revisited.
package statsuc

import (
	"fmt"

	"github.com/ozkat/fleetweb/pkg/core/cerr"
	"github.com/ozkat/fleetweb/pkg/core/stats"
)

// DefaultMaxTrendDays bounds the Trends range when no override is
// configured.
const DefaultMaxTrendDays = 365

// UseCase represents the interaction statistics use case.
type UseCase struct {
	tracker *stats.Tracker

	maxTrendDays int
}

// Option is a functional option for the statistics use case.
type Option func(uc *UseCase) error

// WithMaxTrendDays overrides the inclusive upper bound of the Trends
// days argument. This option may be passed to the New() function.
func WithMaxTrendDays(days int) Option {
	return func(uc *UseCase) error {
		if days <= 0 {
			return fmt.Errorf("max trend days (%d) is not positive", days)
		}
		uc.maxTrendDays = days
		return nil
	}
}

// New instantiates a statistics use case around the given tracker.
func New(t *stats.Tracker, opts ...Option) (*UseCase, error) {
	uc := &UseCase{tracker: t}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.maxTrendDays == 0 {
		uc.maxTrendDays = DefaultMaxTrendDays
	}
	return uc, nil
}

// RecordView counts one listing view of the vid vehicle.
func (s *UseCase) RecordView(vid int64) {
	s.tracker.RecordView(vid)
}

// RecordFavoriteClick counts one favorite toggle of the vid vehicle.
func (s *UseCase) RecordFavoriteClick(vid int64) {
	s.tracker.RecordFavoriteClick(vid)
}

// RecordDetailView counts one detail view of the vid vehicle.
func (s *UseCase) RecordDetailView(vid int64) {
	s.tracker.RecordDetailView(vid)
}

// RecordAdminAction counts one occurrence of the named admin action,
// optionally referencing a vehicle id (zero for none).
func (s *UseCase) RecordAdminAction(action string, vid int64) {
	s.tracker.RecordAdminAction(action, vid)
}

// VehicleStats reports the counters of the vid vehicle, all-zero for
// ids without any recorded interaction.
func (s *UseCase) VehicleStats(vid int64) stats.VehicleStats {
	return s.tracker.VehicleStats(vid)
}

// Dashboard reports the aggregate tracker state.
func (s *UseCase) Dashboard() stats.Dashboard {
	return s.tracker.Dashboard()
}

// Trends reports the daily rollups of the most recent days dates in
// oldest-to-newest order. A days value outside [1, max] is rejected
// with cerr.BadRequest instead of silently returning an empty list.
func (s *UseCase) Trends(days int) ([]stats.DailyStats, error) {
	if days < 1 || days > s.maxTrendDays {
		return nil, cerr.BadRequest(fmt.Errorf(
			"days (%d) must be in [1, %d]", days, s.maxTrendDays,
		))
	}
	return s.tracker.Trends(days), nil
}
