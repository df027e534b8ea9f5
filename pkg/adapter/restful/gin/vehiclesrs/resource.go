// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehiclesrs realizes the vehicles resource, allowing the
// catalog manipulation REST APIs to be accepted and delegated to the
// vehicles use case. Mutating and viewing operations also feed the
// statistics use case as a side effect, so its interaction counters
// stay consistent with the catalog traffic; the catalog operations
// themselves never depend on the tracker.
package vehiclesrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/serdser"
	"github.com/ozkat/fleetweb/pkg/core/usecase/statsuc"
	"github.com/ozkat/fleetweb/pkg/core/usecase/vehicleuc"
)

type resource struct {
	vehicles *vehicleuc.UseCase
	stats    *statsuc.UseCase
}

// Register instantiates a resource adapting the vehicles use case
// instance with the relevant REST APIs including:
//  1. POST request to /api/fleetweb/v1/vehicles
//     in order to create a vehicle,
//  2. GET request to /api/fleetweb/v1/vehicles
//     in order to list vehicles, restricted to favorites with the
//     favorite query param or to matching vehicles with the q
//     search term query param,
//  3. GET request to /api/fleetweb/v1/vehicles/:vid
//     in order to fetch one vehicle (counted as a detail view),
//  4. PUT request to /api/fleetweb/v1/vehicles/:vid
//     in order to update present fields of a vehicle,
//  5. DELETE request to /api/fleetweb/v1/vehicles/:vid
//     in order to delete a vehicle,
//  6. PATCH request to /api/fleetweb/v1/vehicles/:vid/favorite
//     in order to toggle its favorite flag (counted as a favorite
//     click).
func Register(
	r *gin.RouterGroup,
	vehicles *vehicleuc.UseCase,
	stats *statsuc.UseCase,
) {
	rs := &resource{vehicles: vehicles, stats: stats}
	r.POST("vehicles", rs.CreateVehicle)
	r.GET("vehicles", rs.ListVehicles)
	r.GET("vehicles/:vid", rs.GetVehicle)
	r.PUT("vehicles/:vid", rs.UpdateVehicle)
	r.DELETE("vehicles/:vid", rs.DeleteVehicle)
	r.PATCH("vehicles/:vid/favorite", rs.ToggleFavorite)
}

func (rs *resource) CreateVehicle(c *gin.Context) {
	req := rs.DserCreateVehicleReq(c)
	if req == nil {
		return
	}
	v, err := rs.vehicles.Create(c, *req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	rs.stats.RecordAdminAction("vehicle_created", v.ID)
	c.JSON(http.StatusCreated, SerVehicle(v))
}

func (rs *resource) ListVehicles(c *gin.Context) {
	req := rs.DserListVehiclesReq(c)
	if req == nil {
		return
	}
	var err error
	vs := []VehicleResp{}
	if req.Term != "" {
		vs, err = rs.searchVehicles(c, req.Term)
	} else {
		vs, err = rs.listVehicles(c, req.Favorite)
	}
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusOK, vs)
}

func (rs *resource) GetVehicle(c *gin.Context) {
	vid, ok := rs.DserVehicleID(c)
	if !ok {
		return
	}
	v, err := rs.vehicles.Get(c, vid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	rs.stats.RecordDetailView(vid)
	c.JSON(http.StatusOK, SerVehicle(v))
}

func (rs *resource) UpdateVehicle(c *gin.Context) {
	vid, ok := rs.DserVehicleID(c)
	if !ok {
		return
	}
	req := rs.DserUpdateVehicleReq(c)
	if req == nil {
		return
	}
	v, err := rs.vehicles.Update(c, vid, *req)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	rs.stats.RecordAdminAction("vehicle_updated", vid)
	c.JSON(http.StatusOK, SerVehicle(v))
}

func (rs *resource) DeleteVehicle(c *gin.Context) {
	vid, ok := rs.DserVehicleID(c)
	if !ok {
		return
	}
	if err := rs.vehicles.Delete(c, vid); err != nil {
		serdser.SerErr(c, err)
		return
	}
	rs.stats.RecordAdminAction("vehicle_deleted", vid)
	c.JSON(http.StatusOK, gin.H{
		"message": "vehicle deleted",
		"id":      vid,
	})
}

func (rs *resource) ToggleFavorite(c *gin.Context) {
	vid, ok := rs.DserVehicleID(c)
	if !ok {
		return
	}
	v, err := rs.vehicles.ToggleFavorite(c, vid)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	rs.stats.RecordFavoriteClick(vid)
	c.JSON(http.StatusOK, SerVehicle(v))
}
