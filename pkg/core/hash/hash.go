// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package hash exports the expected interface for the one-way
// credential hashing mechanism. For the corresponding SCRAM-based
// implementation, check the adapter layer.
//
// Interfaces should be defined based on the use cases requirements.
// The users use case needs exactly two operations: turning a raw
// password into a salted hash string at account creation time, and
// checking a login attempt against a previously stored hash string.
// The hash string format (salt encoding, iteration count, algorithm
// name) is an implementation concern of the adapter and is treated as
// opaque here, so another mechanism may be swapped in without
// touching the use cases layer.
package hash

// Hasher represents the expectations from a salted one-way password
// hashing implementation.
type Hasher interface {
	// Hash computes a salted hash string for the given non-empty
	// password, generating a fresh random salt. The returned string
	// is self-describing, so Verify can recover the salt and cost
	// parameters from it.
	Hash(pass string) (string, error)

	// Verify reports whether pass matches the stored hash string.
	// A malformed stored string is reported as an error, while a
	// simple mismatch returns false with a nil error.
	Verify(pass, stored string) (bool, error)
}
