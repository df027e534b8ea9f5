// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package stats implements the interaction tracker, an in-memory
// counter table for vehicle interactions. It counts views, favorite
// clicks, and detail views per vehicle, rolls the same events up into
// per-calendar-day records, and counts admin action occurrences.
// Counters are monotonic for the lifetime of the process and are
// discarded on restart; nothing in this package touches the database.
// The tracker references vehicle ids but never validates them against
// the catalog, so counting works the same for deleted or never-created
// vehicles.
//
// A Tracker instance is safe for concurrent use. Every increment
// holds the tracker mutex for a single fetch-add, so no update may
// be lost under concurrent requests.
package stats

import (
	"sort"
	"sync"
	"time"
)

// DateFormat is the layout of daily rollup keys, an ISO 8601 date.
const DateFormat = "2006-01-02"

// VehicleStats reports the accumulated interaction counters of one
// vehicle. Total is always the sum of the three categories.
type VehicleStats struct {
	VehicleID      int64 `json:"vehicle_id"`
	Views          int64 `json:"views"`
	FavoriteClicks int64 `json:"favorite_clicks"`
	DetailViews    int64 `json:"detail_views"`
	Total          int64 `json:"total"`
}

// DailyStats reports the interactions of one calendar day.
type DailyStats struct {
	Date      string `json:"date"` // ISO 8601 date, e.g., 2025-08-31
	Views     int64  `json:"views"`
	Favorites int64  `json:"favorites"`
	Details   int64  `json:"details"`
}

// Dashboard aggregates the tracker state for the admin dashboard.
type Dashboard struct {
	TotalViews          int64            `json:"total_views"`
	TotalFavoriteClicks int64            `json:"total_favorite_clicks"`
	TotalDetailViews    int64            `json:"total_detail_views"`
	Today               DailyStats       `json:"today"`
	Yesterday           DailyStats       `json:"yesterday"`
	TopVehicles         []VehicleStats   `json:"top_vehicles"`
	AdminActions        map[string]int64 `json:"admin_actions"`
}

// counters is the per-vehicle counter record.
type counters struct {
	views     int64
	favorites int64
	details   int64
}

// Tracker owns the process-lifetime counter mappings. The zero value
// is not usable; instances must be created with New. A Tracker is
// meant to be instantiated once and injected into the components
// which record or report interactions, so tests can use isolated
// instances instead of sharing a package-level singleton.
type Tracker struct {
	mu      sync.Mutex
	perVeh  map[int64]*counters
	order   []int64 // vehicle ids in first-seen order, for tie-breaks
	daily   map[string]*DailyStats
	actions map[string]int64
	now     func() time.Time
}

// Option is a functional option for the Tracker.
type Option func(t *Tracker)

// WithClock overrides the time source, so tests may pin the calendar
// date. The default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// New instantiates an empty tracker with all counters at zero.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		perVeh:  make(map[int64]*counters),
		daily:   make(map[string]*DailyStats),
		actions: make(map[string]int64),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// today returns the daily record of the current UTC date, creating it
// with zero counters if this is the first interaction of the day.
// Caller must hold t.mu.
func (t *Tracker) today() *DailyStats {
	key := t.now().UTC().Format(DateFormat)
	d, ok := t.daily[key]
	if !ok {
		d = &DailyStats{Date: key}
		t.daily[key] = d
	}
	return d
}

// vehicle returns the counter record of vid, creating a zeroed record
// and registering the id in first-seen order if it is unknown.
// Caller must hold t.mu.
func (t *Tracker) vehicle(vid int64) *counters {
	c, ok := t.perVeh[vid]
	if !ok {
		c = &counters{}
		t.perVeh[vid] = c
		t.order = append(t.order, vid)
	}
	return c
}

// RecordView counts one listing view of the vid vehicle, both in its
// per-vehicle record and in today's rollup.
func (t *Tracker) RecordView(vid int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vehicle(vid).views++
	t.today().Views++
}

// RecordFavoriteClick counts one favorite toggle click of the vid
// vehicle, both in its per-vehicle record and in today's rollup.
func (t *Tracker) RecordFavoriteClick(vid int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vehicle(vid).favorites++
	t.today().Favorites++
}

// RecordDetailView counts one detail page view of the vid vehicle,
// both in its per-vehicle record and in today's rollup.
func (t *Tracker) RecordDetailView(vid int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vehicle(vid).details++
	t.today().Details++
}

// RecordAdminAction counts one occurrence of the named admin action.
// The vehicle id is advisory and not counted per-vehicle; unknown or
// zero ids are fine since admin actions may also target no vehicle.
func (t *Tracker) RecordAdminAction(action string, vid int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.actions[action]++
}

// VehicleStats reports the counters of the vid vehicle. Ids which
// never had an interaction report all-zero counters, never an error;
// the missing-key-returns-zero policy is a default value design, not
// a suppressed error.
func (t *Tracker) VehicleStats(vid int64) VehicleStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := VehicleStats{VehicleID: vid}
	if c, ok := t.perVeh[vid]; ok {
		s.Views = c.views
		s.FavoriteClicks = c.favorites
		s.DetailViews = c.details
		s.Total = c.views + c.favorites + c.details
	}
	return s
}

// Dashboard reports the cross-vehicle totals, today's and yesterday's
// rollups (zero-filled if absent), the top-5 vehicles by descending
// interaction total, and the admin action counts. Equal totals are
// ranked by first-seen order, as the sort is stable over the
// insertion-ordered vehicle ids.
func (t *Tracker) Dashboard() Dashboard {
	t.mu.Lock()
	defer t.mu.Unlock()
	d := Dashboard{
		AdminActions: make(map[string]int64, len(t.actions)),
	}
	top := make([]VehicleStats, 0, len(t.order))
	for _, vid := range t.order {
		c := t.perVeh[vid]
		d.TotalViews += c.views
		d.TotalFavoriteClicks += c.favorites
		d.TotalDetailViews += c.details
		top = append(top, VehicleStats{
			VehicleID:      vid,
			Views:          c.views,
			FavoriteClicks: c.favorites,
			DetailViews:    c.details,
			Total:          c.views + c.favorites + c.details,
		})
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Total > top[j].Total
	})
	if len(top) > 5 {
		top = top[:5]
	}
	d.TopVehicles = top
	now := t.now().UTC()
	d.Today = t.dayOrZero(now)
	d.Yesterday = t.dayOrZero(now.AddDate(0, 0, -1))
	for name, n := range t.actions {
		d.AdminActions[name] = n
	}
	return d
}

// Trends reports the daily rollups of the most recent days calendar
// dates in oldest-to-newest order, ending with today. Dates without
// any activity yield zero-filled records. The days count is expected
// to be validated by the caller (see statsuc).
func (t *Tracker) Trends(days int) []DailyStats {
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now().UTC()
	out := make([]DailyStats, 0, days)
	for i := days - 1; i >= 0; i-- {
		out = append(out, t.dayOrZero(now.AddDate(0, 0, -i)))
	}
	return out
}

// dayOrZero returns a copy of the rollup record of the given moment's
// UTC date, or a zero-filled record carrying that date.
// Caller must hold t.mu.
func (t *Tracker) dayOrZero(moment time.Time) DailyStats {
	key := moment.Format(DateFormat)
	if d, ok := t.daily[key]; ok {
		return *d
	}
	return DailyStats{Date: key}
}
