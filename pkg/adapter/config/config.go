// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config loads the YAML configuration settings and provides
// factory methods for the adapters and use cases which depend on
// them. It is preferred to implement Config with primitive fields or
// other structs which are defined locally, not models or structs
// which are defined in lower layers, so the configuration file format
// can be kept intact while other layers change freely.
package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ozkat/fleetweb/pkg/adapter/config/settings"
	"github.com/ozkat/fleetweb/pkg/adapter/db/postgres"
	"github.com/ozkat/fleetweb/pkg/adapter/hash/scram"
	"github.com/ozkat/fleetweb/pkg/core/hash"
	"github.com/ozkat/fleetweb/pkg/core/repo"
	"github.com/ozkat/fleetweb/pkg/core/stats"
	"github.com/ozkat/fleetweb/pkg/core/usecase/statsuc"
	"gopkg.in/yaml.v3"
)

// Config contains all settings which are required by different parts
// of the project, such as adapters or use cases.
type Config struct {
	Database Database // PostgreSQL database connection settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Usecases Usecases // Configuration settings for supported use cases
}

// Database contains the database related configuration settings.
type Database struct {
	Host string // domain name or IP address of the DBMS server
	Port int    // port number of the DBMS server
	Name string // database name, like fleetweb
	User string // database role name
	Pass string // database role password

	// SlowQueryThreshold indicates the duration after which a query
	// should be logged as a slow query. A nil value keeps the
	// adapter's default threshold.
	SlowQueryThreshold *settings.Duration `yaml:"slow-query-threshold"`
}

// URL builds a database connection URL from the d settings.
func (d Database) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s",
		url.QueryEscape(d.User), url.QueryEscape(d.Pass),
		d.Host, d.Port, d.Name,
	)
}

// ConnectionPool creates a database connection pool using the
// connection information which are kept in the c settings.
func (c *Config) ConnectionPool(ctx context.Context) (repo.Pool, error) {
	opts := make([]postgres.Option, 0, 1)
	if d := c.Database.SlowQueryThreshold; d != nil {
		opts = append(
			opts,
			postgres.WithSlowQueryThreshold(time.Duration(*d)),
		)
	}
	p, err := postgres.NewPool(ctx, c.Database.URL(), opts...)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	return p, nil
}

// Gin contains the gin-gonic related configuration settings.
// Fields are defined as pointers, so it is possible to detect if they
// are or are not initialized and fill the missing ones with their
// default values during normalization.
type Gin struct {
	Logger   *bool // Whether to register the gin.Logger() middleware
	Recovery *bool // Whether to register the gin.Recovery() middleware
}

// NewEngine instantiates a new gin-gonic engine instance based on
// the g settings.
func (g Gin) NewEngine() *gin.Engine {
	middlewares := make([]gin.HandlerFunc, 0, 2)
	if *g.Logger {
		middlewares = append(middlewares, gin.Logger())
	}
	if *g.Recovery {
		middlewares = append(middlewares, gin.Recovery())
	}
	e := gin.New()
	e.Use(middlewares...)
	return e
}

// Usecases contains the configuration settings for all use cases.
type Usecases struct {
	Users Users // users use cases related settings
	Stats Stats // statistics use cases related settings
}

// Users contains the configuration settings for the users use cases
// and the database seeding commands.
type Users struct {
	// HashIters indicates the PBKDF2 iterations count of the scram
	// credential hasher. A nil value selects the adapter's default.
	HashIters *int `yaml:"hash-iters"`

	// AdminPassword is the initial password of the seeded admin
	// account. It is consulted by the db init-prod command only;
	// the development seeding uses fixed well-known credentials.
	AdminPassword string `yaml:"admin-password"`
}

// NewHasher instantiates the scram credential hasher based on the
// u settings.
func (u Users) NewHasher() (hash.Hasher, error) {
	iters := scram.DefaultIters
	if u.HashIters != nil {
		iters = *u.HashIters
	}
	m, err := scram.SHA256(iters)
	if err != nil {
		return nil, fmt.Errorf("creating scram mechanism: %w", err)
	}
	return m, nil
}

// Stats contains the configuration settings for the statistics use
// cases.
type Stats struct {
	// MaxTrendDays is the inclusive upper bound of the trends report
	// range. A nil value selects the use case default.
	MaxTrendDays *int `yaml:"max-trend-days"`
}

// NewUseCase instantiates a new statistics use case around the given
// tracker based on the s settings.
func (s Stats) NewUseCase(t *stats.Tracker) (*statsuc.UseCase, error) {
	opts := make([]statsuc.Option, 0, 1)
	if s.MaxTrendDays != nil {
		opts = append(opts, statsuc.WithMaxTrendDays(*s.MaxTrendDays))
	}
	return statsuc.New(t, opts...)
}

// Load reads the configuration file at the given path, unmarshals it,
// and validates and normalizes the loaded settings. Extra items in
// the file are ignored and missing items take their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse unmarshals the data byte slice as a YAML encoded Config and
// validates and normalizes it.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("unmarshalling yaml: %w", err)
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating configs: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize checks the settings for consistency and fills
// the missing optional settings with their default values. It takes
// a pointer receiver since it can modify settings in order to
// normalize them.
func (c *Config) ValidateAndNormalize() error {
	if c.Database.Host == "" {
		c.Database.Host = "127.0.0.1"
	}
	switch p := c.Database.Port; {
	case p == 0:
		c.Database.Port = 5432
	case p < 0 || p > 65535:
		return fmt.Errorf("invalid database port: %d", p)
	}
	if c.Database.Name == "" {
		return errors.New("database name is required")
	}
	if c.Database.User == "" {
		return errors.New("database user is required")
	}
	if d := c.Database.SlowQueryThreshold; d != nil && *d <= 0 {
		return fmt.Errorf(
			"slow query threshold (%v) is not positive", *d,
		)
	}
	if c.Gin.Logger == nil {
		c.Gin.Logger = new(bool)
		*c.Gin.Logger = true
	}
	if c.Gin.Recovery == nil {
		c.Gin.Recovery = new(bool)
		*c.Gin.Recovery = true
	}
	if i := c.Usecases.Users.HashIters; i != nil && *i < 4096 {
		return fmt.Errorf("hash iters (%d) is less than 4096", *i)
	}
	if d := c.Usecases.Stats.MaxTrendDays; d != nil && *d <= 0 {
		return fmt.Errorf("max trend days (%d) is not positive", *d)
	}
	return nil
}
