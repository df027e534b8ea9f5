// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the fleetweb
// project. Commands are organized using the cobra library.
// The root command starts the web server itself while the "db"
// sub-command can be used for the database initialization actions.
// The init-dev and init-prod actions initialize the database with the
// development or production suitable data records.
//
//	./fleetweb [-c /path/of/main/config.yaml]        # start web server
//	./fleetweb db init-dev [-c /path/of/main/config.yaml]
//	./fleetweb db init-prod [-c /path/of/main/config.yaml]
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/ozkat/fleetweb/pkg/adapter/config"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/routes"
	"github.com/ozkat/fleetweb/pkg/core/log"
	"github.com/ozkat/fleetweb/pkg/core/stats"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "fleetweb",
	Short: "A vehicles catalog and interaction analytics web service",
	Long: `A vehicles catalog and interaction analytics web service
which manages a catalog of vehicles and user accounts in a PostgreSQL
database and counts the vehicle interactions (views, favorite clicks,
and detail views) in process memory, rolling them up into per-day
records with aggregate dashboard and trends reports.
The interaction counters are deliberately not persisted, so all
analytics reset when the process restarts.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
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
	tracker := stats.New()
	e := c.Gin.NewEngine()
	if err = routes.Register(e, p, tracker, c); err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	log.Info(ctx, "starting web server")
	if err = e.Run(); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/sample-config.yaml"
	}
}
