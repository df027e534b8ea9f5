// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package stats_test

import (
	"sync"
	"testing"
	"time"

	"github.com/ozkat/fleetweb/pkg/core/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedClock returns a clock function which always reports the same
// moment, so rollup dates stay pinned during a test.
func fixedClock(moment time.Time) func() time.Time {
	return func() time.Time {
		return moment
	}
}

func TestUnknownVehicleReportsZeros(t *testing.T) {
	tr := stats.New()
	s := tr.VehicleStats(404)
	assert.Equal(t, stats.VehicleStats{VehicleID: 404}, s)
}

func TestRecordersAccumulate(t *testing.T) {
	tr := stats.New()
	for i := 0; i < 4; i++ {
		tr.RecordView(7)
	}
	tr.RecordFavoriteClick(7)
	tr.RecordFavoriteClick(7)
	tr.RecordDetailView(7)

	s := tr.VehicleStats(7)
	assert.Equal(t, stats.VehicleStats{
		VehicleID:      7,
		Views:          4,
		FavoriteClicks: 2,
		DetailViews:    1,
		Total:          7,
	}, s)
}

func TestDetailViewsCountSeparately(t *testing.T) {
	tr := stats.New()
	tr.RecordDetailView(1)
	tr.RecordDetailView(1)
	tr.RecordDetailView(1)

	s := tr.VehicleStats(1)
	assert.Equal(t, int64(0), s.Views, "views must stay untouched")
	assert.Equal(t, int64(0), s.FavoriteClicks)
	assert.Equal(t, int64(3), s.DetailViews)
	assert.Equal(t, int64(3), s.Total)
}

func TestDashboardTotalsAndActions(t *testing.T) {
	tr := stats.New()
	tr.RecordView(1)
	tr.RecordView(2)
	tr.RecordFavoriteClick(1)
	tr.RecordDetailView(2)
	tr.RecordAdminAction("vehicle_created", 3)
	tr.RecordAdminAction("vehicle_created", 4)
	tr.RecordAdminAction("vehicle_deleted", 3)

	d := tr.Dashboard()
	assert.Equal(t, int64(2), d.TotalViews)
	assert.Equal(t, int64(1), d.TotalFavoriteClicks)
	assert.Equal(t, int64(1), d.TotalDetailViews)
	assert.Equal(t, map[string]int64{
		"vehicle_created": 2,
		"vehicle_deleted": 1,
	}, d.AdminActions)
	s := tr.VehicleStats(3)
	assert.Zero(t, s.Total, "admin actions are not vehicle counters")
}

func TestDashboardTopFive(t *testing.T) {
	tr := stats.New()
	views := func(vid int64, n int) {
		for i := 0; i < n; i++ {
			tr.RecordView(vid)
		}
	}
	// Vehicles 10 and 20 are tied; 10 was seen first and must win.
	views(10, 10)
	views(20, 10)
	views(30, 5)
	views(40, 8)
	views(50, 1)
	views(60, 3)

	d := tr.Dashboard()
	require.Len(t, d.TopVehicles, 5)
	ids := make([]int64, 0, 5)
	for _, s := range d.TopVehicles {
		ids = append(ids, s.VehicleID)
	}
	assert.Equal(t, []int64{10, 20, 40, 30, 60}, ids)
}

func TestDashboardTodayAndYesterday(t *testing.T) {
	day1 := time.Date(2025, 8, 30, 23, 50, 0, 0, time.UTC)
	day2 := time.Date(2025, 8, 31, 0, 10, 0, 0, time.UTC)
	moment := day1
	tr := stats.New(stats.WithClock(func() time.Time {
		return moment
	}))
	tr.RecordView(1)
	tr.RecordFavoriteClick(1)
	moment = day2
	tr.RecordView(2)

	d := tr.Dashboard()
	assert.Equal(t, stats.DailyStats{
		Date:  "2025-08-31",
		Views: 1,
	}, d.Today)
	assert.Equal(t, stats.DailyStats{
		Date:      "2025-08-30",
		Views:     1,
		Favorites: 1,
	}, d.Yesterday)
}

func TestTrendsWindow(t *testing.T) {
	now := time.Date(2025, 8, 31, 12, 0, 0, 0, time.UTC)
	tr := stats.New(stats.WithClock(fixedClock(now)))
	tr.RecordView(1)
	tr.RecordDetailView(1)

	days := tr.Trends(7)
	require.Len(t, days, 7)
	for i, d := range days {
		expDate := now.AddDate(0, 0, i-6).Format(stats.DateFormat)
		assert.Equal(t, expDate, d.Date, "dates must be consecutive")
		if i < 6 {
			assert.Zero(t, d.Views, "idle days must be zero-filled")
			assert.Zero(t, d.Favorites)
			assert.Zero(t, d.Details)
		}
	}
	last := days[6]
	assert.Equal(t, stats.DailyStats{
		Date:    "2025-08-31",
		Views:   1,
		Details: 1,
	}, last)
}

func TestConcurrentRecording(t *testing.T) {
	tr := stats.New()
	const workers = 8
	const perWorker = 1000
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				tr.RecordView(1)
			}
		}()
	}
	wg.Wait()
	s := tr.VehicleStats(1)
	assert.Equal(t, int64(workers*perWorker), s.Views)
}
