// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package stlmig1 provides the Settler type for database schema major
// version 1. It can initialize a database with the version 1 tables
// and fill them with development or production suitable data rows.
// Passwords never reach this package in plain form; seed users carry
// their already computed hash strings.
package stlmig1

import (
	"context"
	"fmt"

	"github.com/ozkat/fleetweb/pkg/core/model"
	"github.com/ozkat/fleetweb/pkg/core/repo"
)

// These constants indicate the major, minor, and patch components of
// the database schema version which is created by this package.
const (
	Major = 1
	Minor = 0
	Patch = 0
)

// Settler struct provides the database schema initialization logic
// for the major version 1.
//
// Each instance of Settler wraps and uses a single transaction of the
// target database, but the caller is responsible to commit that
// transaction in order to finalize the initialization results.
type Settler struct {
	tx repo.Tx // target database transaction
}

// New creates a new Settler instance, wrapping the given tx database
// transaction.
func New(tx repo.Tx) *Settler {
	return &Settler{
		tx: tx,
	}
}

// InitSchema creates the major version 1 tables if they do not exist
// yet: the vehicles catalog table and the users accounts table.
func (sm1 *Settler) InitSchema(ctx context.Context) error {
	_, err := sm1.tx.Exec(ctx, `
CREATE TABLE IF NOT EXISTS vehicles (
    id BIGSERIAL PRIMARY KEY,
    name VARCHAR(100) NOT NULL,
    category VARCHAR(50) NOT NULL,
    model VARCHAR(50) NOT NULL,
    year INTEGER NOT NULL,
    price DOUBLE PRECISION,
    description TEXT,
    image_url VARCHAR(500),
    favorite BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS vehicles_name_idx ON vehicles (name);
CREATE TABLE IF NOT EXISTS users (
    uid UUID PRIMARY KEY,
    username VARCHAR(50) NOT NULL UNIQUE,
    password_hash VARCHAR(200) NOT NULL,
    admin BOOLEAN NOT NULL DEFAULT FALSE
);`)
	if err != nil {
		return fmt.Errorf("creating schema tables: %w", err)
	}
	return nil
}

// SeedUsers inserts the given user rows, skipping usernames which
// exist already, so repeated initialization attempts stay idempotent.
func (sm1 *Settler) SeedUsers(ctx context.Context, users []model.User) error {
	for _, u := range users {
		_, err := sm1.tx.Exec(ctx, `
INSERT INTO users (uid, username, password_hash, admin)
VALUES ($1, $2, $3, $4)
ON CONFLICT (username) DO NOTHING`,
			u.ID, u.Username, u.PasswordHash, u.Admin,
		)
		if err != nil {
			return fmt.Errorf("seeding user %q: %w", u.Username, err)
		}
	}
	return nil
}

// SeedVehicles inserts the given vehicle rows, but only into an empty
// vehicles table, so the sample catalog is never duplicated by
// repeated initialization attempts.
func (sm1 *Settler) SeedVehicles(ctx context.Context, vehicles []model.VehicleFields) error {
	empty, err := sm1.vehiclesEmpty(ctx)
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}
	for _, v := range vehicles {
		_, err := sm1.tx.Exec(ctx, `
INSERT INTO vehicles (name, category, model, year, price, description, image_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			v.Name, v.Category, v.Model, v.Year,
			v.Price, v.Description, v.ImageURL,
		)
		if err != nil {
			return fmt.Errorf("seeding vehicle %q: %w", v.Name, err)
		}
	}
	return nil
}

func (sm1 *Settler) vehiclesEmpty(ctx context.Context) (bool, error) {
	rows, err := sm1.tx.Query(ctx, `SELECT COUNT(*) FROM vehicles`)
	if err != nil {
		return false, fmt.Errorf("counting vehicles: %w", err)
	}
	defer rows.Close()
	var count int64
	if !rows.Next() {
		return false, fmt.Errorf("counting vehicles: %w", rows.Err())
	}
	if err := rows.Scan(&count); err != nil {
		return false, fmt.Errorf("scanning count: %w", err)
	}
	return count == 0, nil
}

// MajorVersion returns the major semantic version of this Settler
// instance. This value matches with the Major constant which is
// defined in this package.
func (sm1 *Settler) MajorVersion() uint {
	return Major
}
