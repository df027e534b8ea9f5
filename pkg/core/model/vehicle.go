// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MinVehicleYear is the oldest acceptable manufacturing year for a
// catalog vehicle. The upper bound is the current calendar year at
// validation time.
const MinVehicleYear = 1950

// Vehicle models one catalog entry which may be persisted in a
// database. IDs are assigned by the storage on creation, so a zero ID
// indicates a not-yet-persisted vehicle.
type Vehicle struct {
	ID          int64    // unique identifier, assigned on creation
	Name        string   // vehicle name, e.g., Kar Küreme Aracı
	Category    string   // category name, e.g., Yol Bakım
	Model       string   // model code, e.g., KKA-2022
	Year        int      // manufacturing year
	Price       *float64 // optional price, non-negative
	Description *string  // optional free-form description
	ImageURL    *string  // optional image reference
	Favorite    bool     // favorite flag, toggled by end-users
}

// VehicleFields carries the validated fields for a vehicle creation.
// See ValidateVehicleFields for the field constraints.
type VehicleFields struct {
	Name        string
	Category    string
	Model       string
	Year        int
	Price       *float64
	Description *string
	ImageURL    *string
}

// VehicleUpdate describes a partial vehicle update. A nil field is
// absent and leaves the stored value unchanged, while a non-nil field
// replaces it after re-validation. This explicit present-vs-absent
// distinction replaces attribute-by-attribute mutation.
type VehicleUpdate struct {
	Name        *string
	Category    *string
	Model       *string
	Year        *int
	Price       *float64
	Description *string
	ImageURL    *string
	Favorite    *bool
}

// IsZero reports whether no field is present in this update.
func (u VehicleUpdate) IsZero() bool {
	return u.Name == nil && u.Category == nil && u.Model == nil &&
		u.Year == nil && u.Price == nil && u.Description == nil &&
		u.ImageURL == nil && u.Favorite == nil
}

// ValidateVehicleFields normalizes and validates the given fields,
// trimming the name, category, and model strings in-place.
// The name must have 2 up to 100 characters, the category 2 up to 50,
// and the model 1 up to 50, all measured after whitespace trimming.
// The year must fall in [MinVehicleYear, current year] and the price,
// if present, may not be negative.
func ValidateVehicleFields(f *VehicleFields) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Category = strings.TrimSpace(f.Category)
	f.Model = strings.TrimSpace(f.Model)
	switch {
	case len(f.Name) < 2 || len(f.Name) > 100:
		return errors.New("vehicle name must have 2 up to 100 chars")
	case len(f.Category) < 2 || len(f.Category) > 50:
		return errors.New("category must have 2 up to 50 chars")
	case len(f.Model) < 1 || len(f.Model) > 50:
		return errors.New("model must have 1 up to 50 chars")
	}
	if err := ValidateVehicleYear(f.Year); err != nil {
		return err
	}
	if f.Price != nil && *f.Price < 0 {
		return fmt.Errorf("price (%v) may not be negative", *f.Price)
	}
	return nil
}

// ValidateVehicleYear checks that year falls in the inclusive
// [MinVehicleYear, current calendar year] range.
func ValidateVehicleYear(year int) error {
	if year < MinVehicleYear {
		return fmt.Errorf(
			"year (%d) may not precede %d", year, MinVehicleYear,
		)
	}
	if now := time.Now().Year(); year > now {
		return fmt.Errorf(
			"year (%d) may not exceed the current year (%d)", year, now,
		)
	}
	return nil
}

// Validate normalizes and validates the present fields of a partial
// update, trimming string fields in-place. Absent fields are ignored.
func (u *VehicleUpdate) Validate() error {
	if err := trimmed(u.Name, "vehicle name", 2, 100); err != nil {
		return err
	}
	if err := trimmed(u.Category, "category", 2, 50); err != nil {
		return err
	}
	if err := trimmed(u.Model, "model", 1, 50); err != nil {
		return err
	}
	if u.Year != nil {
		if err := ValidateVehicleYear(*u.Year); err != nil {
			return err
		}
	}
	if u.Price != nil && *u.Price < 0 {
		return fmt.Errorf("price (%v) may not be negative", *u.Price)
	}
	return nil
}

func trimmed(s *string, what string, min, max int) error {
	if s == nil {
		return nil
	}
	*s = strings.TrimSpace(*s)
	if len(*s) < min || len(*s) > max {
		return fmt.Errorf(
			"%s must have %d up to %d chars", what, min, max,
		)
	}
	return nil
}
