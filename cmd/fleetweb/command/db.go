// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ozkat/fleetweb/pkg/adapter/config"
	"github.com/ozkat/fleetweb/pkg/adapter/db/postgres/migration/stlmig1"
	"github.com/ozkat/fleetweb/pkg/core/log"
	"github.com/ozkat/fleetweb/pkg/core/repo"
	"github.com/spf13/cobra"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database management actions",
	Long: `Database management actions can be chosen by sub-commands.
For fresh installation in a development or production environment,
the init-dev or init-prod may be used. Both create the schema tables
if they are missing and seed the initial data rows idempotently, so
they are safe to run again on an existing installation.`,
}

// initDatabase connects to the configured database and runs the given
// seeding function together with the schema creation in a single
// transaction.
func initDatabase(
	seed func(
		ctx context.Context, c *config.Config, sm1 *stlmig1.Settler,
	) error,
) error {
	ctx := context.Background()
	c, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("config.Load(%q): %w", cfgPath, err)
	}
	p, err := c.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	err = p.Conn(ctx, func(ctx context.Context, conn repo.Conn) error {
		return conn.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			sm1 := stlmig1.New(tx)
			if err := sm1.InitSchema(ctx); err != nil {
				return err
			}
			return seed(ctx, c, sm1)
		})
	})
	if err != nil {
		log.Error(ctx, "database initialization failed", log.Err("error", err))
		return err
	}
	log.Info(
		ctx, "database initialized",
		slog.String("config", cfgPath),
		slog.Uint64("schema-major", uint64(stlmig1.Major)),
	)
	return nil
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
