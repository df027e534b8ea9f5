// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ozkat/fleetweb/pkg/adapter/config"
	"github.com/ozkat/fleetweb/pkg/adapter/db/postgres/migration/stlmig1"
	"github.com/ozkat/fleetweb/pkg/core/model"
	"github.com/spf13/cobra"
)

var initProdCmd = &cobra.Command{
	Use:   "init-prod",
	Short: "Initialize database contents with production suitable data",
	Long: `Initialize database contents with production suitable data.
The database connection information are read from the config file.
The schema tables are created if they do not exist yet. Thereafter,
a single admin account is seeded taking its initial password from the
admin-password configuration setting. No sample vehicles are seeded.
An existing admin account is kept unchanged, hence, this command may
be run repeatedly.`,
	RunE: initProd,
	Args: cobra.NoArgs,
}

func initProd(_ *cobra.Command, _ []string) error {
	return initDatabase(seedProd)
}

func seedProd(
	ctx context.Context, c *config.Config, sm1 *stlmig1.Settler,
) error {
	pass := c.Usecases.Users.AdminPassword
	if pass == "" {
		return errors.New(
			"admin-password config setting must be set",
		)
	}
	h, err := c.Usecases.Users.NewHasher()
	if err != nil {
		return fmt.Errorf("creating credential hasher: %w", err)
	}
	hash, err := h.Hash(pass)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}
	err = sm1.SeedUsers(ctx, []model.User{
		{
			ID:           uuid.New(),
			Username:     "admin",
			PasswordHash: hash,
			Admin:        true,
		},
	})
	if err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}
	return nil
}

func init() {
	dbCmd.AddCommand(initProdCmd)
}
