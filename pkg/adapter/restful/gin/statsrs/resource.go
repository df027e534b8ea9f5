// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package statsrs realizes the statistics resource. The increment
// APIs are fire-and-forget: they always acknowledge with a tracked
// flag since counting never fails, not even for vehicle ids which the
// catalog does not know. The report APIs expose the aggregated
// tracker state.
package statsrs

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/ozkat/fleetweb/pkg/core/usecase/statsuc"
)

type resource struct {
	stats *statsuc.UseCase
}

// Register instantiates a resource adapting the statistics use case
// instance with the relevant REST APIs including:
//  1. POST requests to /api/fleetweb/v1/stats/views/:vid,
//     /api/fleetweb/v1/stats/details/:vid, and
//     /api/fleetweb/v1/stats/favorites/:vid
//     in order to count one interaction of the respective category,
//  2. GET request to /api/fleetweb/v1/stats/vehicles/:vid
//     in order to report the counters of one vehicle,
//  3. GET request to /api/fleetweb/v1/stats/dashboard
//     in order to report the aggregate dashboard,
//  4. GET request to /api/fleetweb/v1/stats/trends?days=N
//     in order to report the recent daily rollups.
func Register(r *gin.RouterGroup, stats *statsuc.UseCase) {
	rs := &resource{stats: stats}
	r.POST("stats/views/:vid", rs.RecordView)
	r.POST("stats/details/:vid", rs.RecordDetailView)
	r.POST("stats/favorites/:vid", rs.RecordFavoriteClick)
	r.GET("stats/vehicles/:vid", rs.GetVehicleStats)
	r.GET("stats/dashboard", rs.GetDashboard)
	r.GET("stats/trends", rs.GetTrends)
}

func (rs *resource) RecordView(c *gin.Context) {
	vid, ok := rs.DserVehicleID(c)
	if !ok {
		return
	}
	rs.stats.RecordView(vid)
	c.JSON(http.StatusOK, gin.H{"tracked": true})
}

func (rs *resource) RecordDetailView(c *gin.Context) {
	vid, ok := rs.DserVehicleID(c)
	if !ok {
		return
	}
	rs.stats.RecordDetailView(vid)
	c.JSON(http.StatusOK, gin.H{"tracked": true})
}

func (rs *resource) RecordFavoriteClick(c *gin.Context) {
	vid, ok := rs.DserVehicleID(c)
	if !ok {
		return
	}
	rs.stats.RecordFavoriteClick(vid)
	c.JSON(http.StatusOK, gin.H{"tracked": true})
}

func (rs *resource) GetVehicleStats(c *gin.Context) {
	vid, ok := rs.DserVehicleID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rs.stats.VehicleStats(vid))
}

func (rs *resource) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, rs.stats.Dashboard())
}

func (rs *resource) GetTrends(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil {
		var errs map[string][]string
		serdser.AddErr(
			&errs, "days",
			"Query param days is not an integer.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return
	}
	trends, terr := rs.stats.Trends(days)
	if terr != nil {
		serdser.SerErr(c, terr)
		return
	}
	c.JSON(http.StatusOK, trends)
}

// DserVehicleID extracts and parses the vid path param.
func (rs *resource) DserVehicleID(c *gin.Context) (int64, bool) {
	vid, err := strconv.ParseInt(c.Param("vid"), 10, 64)
	if err != nil || vid <= 0 {
		var errs map[string][]string
		serdser.AddErr(
			&errs, "vid",
			"Path param vid is not a positive integer.",
		)
		c.JSON(http.StatusBadRequest, errs)
		return 0, false
	}
	return vid, true
}
