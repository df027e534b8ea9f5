// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// User models an account which may authenticate against the catalog.
// The password itself is never stored; PasswordHash holds a salted
// one-way hash string in the standard scram format.
type User struct {
	ID           uuid.UUID // unique identifier
	Username     string    // unique across all users, case-sensitive
	PasswordHash string    // salted scram hash of the password
	Admin        bool      // administrative privileges flag
}

// Credentials carries a username and a raw (not yet hashed) password
// as provided by an end-user for account creation or authentication.
type Credentials struct {
	Username string
	Password string
}

// Validate normalizes and validates the credentials, trimming both
// fields in-place. The username must have 3 up to 50 characters and
// the password 6 up to 100 characters after trimming.
func (c *Credentials) Validate() error {
	c.Username = strings.TrimSpace(c.Username)
	c.Password = strings.TrimSpace(c.Password)
	switch {
	case len(c.Username) < 3 || len(c.Username) > 50:
		return errors.New("username must have 3 up to 50 chars")
	case len(c.Password) < 6 || len(c.Password) > 100:
		return errors.New("password must have 6 up to 100 chars")
	}
	return nil
}
