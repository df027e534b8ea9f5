// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package vehicleuc contains the vehicles UseCase which supports the
// catalog manipulation use cases: creating, fetching, listing,
// updating, deleting, and searching vehicles, and toggling their
// favorite flag.
package vehicleuc

import (
	"context"
	"errors"
	"strings"

	"github.com/ozkat/fleetweb/pkg/core/cerr"
	"github.com/ozkat/fleetweb/pkg/core/model"
	"github.com/ozkat/fleetweb/pkg/core/repo"
)

// UseCase represents a vehicles use case. It holds a database
// connection pool and the vehicles repository instance (to be guided
// with the DB pool).
type UseCase struct {
	pool       repo.Pool
	vehiclesrp repo.Vehicles
}

// New instantiates a vehicles use case.
func New(p repo.Pool, v repo.Vehicles) *UseCase {
	return &UseCase{pool: p, vehiclesrp: v}
}

// Create validates the given fields and persists a new vehicle in a
// single write transaction, returning the created record with its
// assigned id. Constraint violations are reported as cerr.BadRequest
// before any write is attempted.
func (vehicles *UseCase) Create(ctx context.Context, f model.VehicleFields) (v *model.Vehicle, err error) {
	if err = model.ValidateVehicleFields(&f); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := vehicles.vehiclesrp.Tx(tx)
			v, err = q.Create(ctx, f)
			return err
		})
	})
	if err != nil {
		v = nil
	}
	return
}

// Get returns the vid vehicle or a cerr.NotFound error.
func (vehicles *UseCase) Get(ctx context.Context, vid int64) (v *model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		v, err = q.Get(ctx, vid)
		return err
	})
	if err != nil {
		v = nil
	}
	return
}

// List returns all vehicles in storage order. A non-nil favorite
// argument restricts the result to vehicles with that favorite value.
func (vehicles *UseCase) List(ctx context.Context, favorite *bool) (vs []model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		vs, err = q.List(ctx, favorite)
		return err
	})
	if err != nil {
		vs = nil
	}
	return
}

// Update applies the present fields of u to the vid vehicle in a
// single write transaction, leaving absent fields unchanged. Present
// fields are re-validated first; an update without any present field
// is rejected as a bad request and an unknown vid as cerr.NotFound.
func (vehicles *UseCase) Update(ctx context.Context, vid int64, u model.VehicleUpdate) (v *model.Vehicle, err error) {
	if u.IsZero() {
		return nil, cerr.BadRequest(
			errors.New("update contains no fields"),
		)
	}
	if err = u.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := vehicles.vehiclesrp.Tx(tx)
			v, err = q.Update(ctx, vid, u)
			return err
		})
	})
	if err != nil {
		v = nil
	}
	return
}

// Delete removes the vid vehicle or fails with cerr.NotFound.
func (vehicles *UseCase) Delete(ctx context.Context, vid int64) error {
	return vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := vehicles.vehiclesrp.Tx(tx)
			return q.Delete(ctx, vid)
		})
	})
}

// ToggleFavorite flips the favorite flag of the vid vehicle and
// returns the updated record, or fails with cerr.NotFound. Toggling
// twice restores the original value.
func (vehicles *UseCase) ToggleFavorite(ctx context.Context, vid int64) (v *model.Vehicle, err error) {
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := vehicles.vehiclesrp.Tx(tx)
			v, err = q.ToggleFavorite(ctx, vid)
			return err
		})
	})
	if err != nil {
		v = nil
	}
	return
}

// Search returns the vehicles whose name, category, or model contains
// term as a case-insensitive substring. An empty term (after
// trimming) is rejected as a bad request.
func (vehicles *UseCase) Search(ctx context.Context, term string) (vs []model.Vehicle, err error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, cerr.BadRequest(
			errors.New("search term may not be empty"),
		)
	}
	err = vehicles.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := vehicles.vehiclesrp.Conn(c)
		vs, err = q.Search(ctx, term)
		return err
	})
	if err != nil {
		vs = nil
	}
	return
}
