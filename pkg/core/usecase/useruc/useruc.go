// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package useruc contains the users UseCase which supports the
// account related use cases: creating a user and authenticating a
// login attempt. Passwords are never persisted in plain form; the
// injected hash.Hasher turns them into salted hash strings and
// verifies login attempts against the stored strings.
package useruc

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/ozkat/fleetweb/pkg/core/cerr"
	"github.com/ozkat/fleetweb/pkg/core/hash"
	"github.com/ozkat/fleetweb/pkg/core/model"
	"github.com/ozkat/fleetweb/pkg/core/repo"
)

// UseCase represents a users use case. It holds a database connection
// pool, the users repository instance, and the credential hasher.
type UseCase struct {
	pool    repo.Pool
	usersrp repo.Users
	hasher  hash.Hasher
}

// New instantiates a users use case.
func New(p repo.Pool, u repo.Users, h hash.Hasher) *UseCase {
	return &UseCase{pool: p, usersrp: u, hasher: h}
}

// Create validates the given credentials, hashes the password, and
// persists a new non-admin user in a single write transaction.
// A duplicate username is reported as cerr.Conflict, leaving the
// original record unchanged.
func (users *UseCase) Create(ctx context.Context, creds model.Credentials) (u *model.User, err error) {
	return users.create(ctx, creds, false)
}

// CreateAdmin behaves like Create with the admin flag set. It is used
// by the database initialization commands for seeding.
func (users *UseCase) CreateAdmin(ctx context.Context, creds model.Credentials) (u *model.User, err error) {
	return users.create(ctx, creds, true)
}

func (users *UseCase) create(ctx context.Context, creds model.Credentials, admin bool) (u *model.User, err error) {
	if err = creds.Validate(); err != nil {
		return nil, cerr.BadRequest(err)
	}
	hashed, err := users.hasher.Hash(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	err = users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			q := users.usersrp.Tx(tx)
			u, err = q.Create(ctx, model.User{
				ID:           uuid.New(),
				Username:     creds.Username,
				PasswordHash: hashed,
				Admin:        admin,
			})
			return err
		})
	})
	if err != nil {
		u = nil
	}
	return
}

// Authenticate verifies the given credentials and returns the stored
// user on a match. Both an unknown username and a password mismatch
// are reported as the same cerr.Authentication error, so a caller
// cannot probe which usernames exist.
func (users *UseCase) Authenticate(ctx context.Context, creds model.Credentials) (u *model.User, err error) {
	if verr := creds.Validate(); verr != nil {
		return nil, cerr.Authentication(
			errors.New("invalid username or password"),
		)
	}
	err = users.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		q := users.usersrp.Conn(c)
		u, err = q.GetByUsername(ctx, creds.Username)
		return err
	})
	if err != nil {
		var ce *cerr.Error
		if errors.As(err, &ce) && ce.HTTPStatusCode == http.StatusNotFound {
			return nil, cerr.Authentication(
				errors.New("invalid username or password"),
			)
		}
		return nil, err
	}
	ok, err := users.hasher.Verify(creds.Password, u.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, cerr.Authentication(
			errors.New("invalid username or password"),
		)
	}
	return u, nil
}
