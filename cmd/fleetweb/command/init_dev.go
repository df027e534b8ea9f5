// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/ozkat/fleetweb/pkg/adapter/config"
	"github.com/ozkat/fleetweb/pkg/adapter/db/postgres/migration/stlmig1"
	"github.com/ozkat/fleetweb/pkg/core/model"
	"github.com/spf13/cobra"
)

var initDevCmd = &cobra.Command{
	Use:   "init-dev",
	Short: "Initialize database contents with development suitable data",
	Long: `Initialize database contents with development suitable data.
The database connection information are read from the config file.
The schema tables are created if they do not exist yet. Thereafter,
two well-known user accounts (an admin and a normal user) and a
sample set of municipal vehicles are seeded. Existing user accounts
are kept unchanged and the sample vehicles are only inserted into an
empty vehicles table, hence, this command may be run repeatedly.`,
	RunE: initDev,
	Args: cobra.NoArgs,
}

func initDev(_ *cobra.Command, _ []string) error {
	return initDatabase(seedDev)
}

func seedDev(
	ctx context.Context, c *config.Config, sm1 *stlmig1.Settler,
) error {
	h, err := c.Usecases.Users.NewHasher()
	if err != nil {
		return fmt.Errorf("creating credential hasher: %w", err)
	}
	users := make([]model.User, 0, 2)
	for _, creds := range []struct {
		username, password string
		admin              bool
	}{
		{"admin", "admin123", true},
		{"user", "user123", false},
	} {
		hash, err := h.Hash(creds.password)
		if err != nil {
			return fmt.Errorf(
				"hashing %q password: %w", creds.username, err,
			)
		}
		users = append(users, model.User{
			ID:           uuid.New(),
			Username:     creds.username,
			PasswordHash: hash,
			Admin:        creds.admin,
		})
	}
	if err := sm1.SeedUsers(ctx, users); err != nil {
		return fmt.Errorf("seeding user accounts: %w", err)
	}
	if err := sm1.SeedVehicles(ctx, devVehicles()); err != nil {
		return fmt.Errorf("seeding sample vehicles: %w", err)
	}
	return nil
}

// devVehicles returns the sample municipal vehicles which are seeded
// in a development environment.
func devVehicles() []model.VehicleFields {
	desc := func(s string) *string { return &s }
	price := func(f float64) *float64 { return &f }
	return []model.VehicleFields{
		{
			Name:     "Kar Küreme Aracı",
			Category: "Yol Bakım",
			Model:    "KKA-2022",
			Year:     2022,
			Price:    price(850000),
			Description: desc(
				"Kar küreme ve yol temizleme aracı",
			),
		},
		{
			Name:     "Tuzlama Aracı",
			Category: "Yol Bakım",
			Model:    "TA-2021",
			Year:     2021,
			Price:    price(720000),
			Description: desc(
				"Buzlanmaya karşı yol tuzlama aracı",
			),
		},
		{
			Name:     "Çöp Kamyonu",
			Category: "Temizlik",
			Model:    "CK-2020",
			Year:     2020,
			Price:    price(650000),
			Description: desc(
				"Evsel atık toplama kamyonu",
			),
		},
	}
}

func init() {
	dbCmd.AddCommand(initDevCmd)
}
