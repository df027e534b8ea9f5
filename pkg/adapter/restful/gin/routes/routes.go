// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of all repo, use case, and resource
// packages based on the user provided configuration settings.
package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ozkat/fleetweb/pkg/adapter/config"
	"github.com/ozkat/fleetweb/pkg/adapter/db/postgres/usersrp"
	"github.com/ozkat/fleetweb/pkg/adapter/db/postgres/vehiclesrp"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/statsrs"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/usersrs"
	"github.com/ozkat/fleetweb/pkg/adapter/restful/gin/vehiclesrs"
	"github.com/ozkat/fleetweb/pkg/core/repo"
	"github.com/ozkat/fleetweb/pkg/core/stats"
	"github.com/ozkat/fleetweb/pkg/core/usecase/useruc"
	"github.com/ozkat/fleetweb/pkg/core/usecase/vehicleuc"
)

// Register instantiates relevant repositories and use cases based on
// the c configuration settings. The p connections pool is passed to
// the use case instances, so they may acquire/release connections and
// transactions on demand. These connections/transactions will be
// passed to the repositories later in order to run relevant queries
// on them and accomplish those use cases. Each use case package is
// named like vehicleuc and each repository package is named like
// vehiclesrp.
// The t tracker instance is owned by the caller and injected here, so
// one process-lifetime counter table serves all requests while tests
// may register routes around isolated tracker instances.
// Register instantiates a series of "resource" structs, from packages
// which are named like vehiclesrs, in order to adapt the use cases
// interfaces with the REST APIs. These resources are registered as
// request handlers using the e gin-gonic engine instance.
// Possible errors will be returned after possible wrapping.
func Register(
	e *gin.Engine, p repo.Pool, t *stats.Tracker, c *config.Config,
) error {
	vehiclesRepo := vehiclesrp.New()
	usersRepo := usersrp.New()

	hasher, err := c.Usecases.Users.NewHasher()
	if err != nil {
		return fmt.Errorf("creating credential hasher: %w", err)
	}
	vehiclesUseCase := vehicleuc.New(p, vehiclesRepo)
	usersUseCase := useruc.New(p, usersRepo, hasher)
	statsUseCase, err := c.Usecases.Stats.NewUseCase(t)
	if err != nil {
		return fmt.Errorf("creating statistics use case: %w", err)
	}

	r := e.Group("/api/fleetweb/v1")
	vehiclesrs.Register(r, vehiclesUseCase, statsUseCase)
	usersrs.Register(r, usersUseCase)
	statsrs.Register(r, statsUseCase)
	return nil
}
