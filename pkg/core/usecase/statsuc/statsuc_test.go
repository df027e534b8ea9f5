// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package statsuc_test

import (
	"net/http"
	"testing"

	"github.com/ozkat/fleetweb/pkg/core/cerr"
	"github.com/ozkat/fleetweb/pkg/core/stats"
	"github.com/ozkat/fleetweb/pkg/core/usecase/statsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithInvalidOption(t *testing.T) {
	_, err := statsuc.New(
		stats.New(), statsuc.WithMaxTrendDays(0),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not positive")
}

func TestTrendsBounds(t *testing.T) {
	uc, err := statsuc.New(stats.New())
	require.NoError(t, err)
	for _, tc := range []struct {
		name string
		days int
		ok   bool
	}{
		{"zero days", 0, false},
		{"negative days", -3, false},
		{"one day", 1, true},
		{"default week", 7, true},
		{"max days", statsuc.DefaultMaxTrendDays, true},
		{"above max", statsuc.DefaultMaxTrendDays + 1, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := uc.Trends(tc.days)
			if tc.ok {
				require.NoError(t, err)
				assert.Len(t, ds, tc.days)
				return
			}
			require.Error(t, err)
			cerrErr := &cerr.Error{}
			require.ErrorAs(t, err, &cerrErr)
			assert.Equal(
				t, http.StatusBadRequest, cerrErr.HTTPStatusCode,
			)
		})
	}
}

func TestTrendsMaxOverride(t *testing.T) {
	uc, err := statsuc.New(
		stats.New(), statsuc.WithMaxTrendDays(10),
	)
	require.NoError(t, err)
	_, err = uc.Trends(10)
	assert.NoError(t, err)
	_, err = uc.Trends(11)
	assert.Error(t, err)
}

func TestDelegation(t *testing.T) {
	tr := stats.New()
	uc, err := statsuc.New(tr)
	require.NoError(t, err)

	uc.RecordView(3)
	uc.RecordFavoriteClick(3)
	uc.RecordDetailView(3)
	uc.RecordAdminAction("vehicle_updated", 3)

	s := uc.VehicleStats(3)
	assert.Equal(t, int64(3), s.Total)
	d := uc.Dashboard()
	assert.Equal(t, int64(1), d.TotalViews)
	assert.Equal(t, int64(1), d.AdminActions["vehicle_updated"])
}
