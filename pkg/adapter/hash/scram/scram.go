// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram presents an implementation of the core hash.Hasher
// interface on top of the SCRAM-SHA-256 and SCRAM-SHA-1 mechanisms.
// See the SHA256 and SHA1 functions for their instantiation logic.
// When a mechanism for a specific underlying hash function is
// instantiated, it can be used for generation of hash strings in the
// SCRAM standard format and for verification of passwords against
// previously generated strings.
// This format is also known as the scram encrypted password format,
// however, it may not be reversed (so no encryption/decryption is
// taking place). This package relies on the github.com/xdg-go/scram
// module for the SCRAM implementation.
package scram

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xdg-go/scram"
)

// DefaultIters is the default PBKDF2 iterations count. The RFC 7677
// recommends at least 15000 iterations.
const DefaultIters = 15000

// Mechanism provides a Salted Challenge Response Authentication
// Mechanism (SCRAM) having a fixed underlying hash algorithm and
// iterations count.
//
// It implements the github.com/ozkat/fleetweb/pkg/core/hash.Hasher
// interface, so it may be used in the use cases layer without any
// dependency on the actual implementation.
type Mechanism struct {
	hashGenerator scram.HashGeneratorFcn
	outLen        int // bytes
	name          string
	iters         int
}

// SHA1 returns a new Mechanism instance using the SHA1 as its
// underlying hash algorithm and the given iterations count, which
// must be at least 4096.
func SHA1(iters int) (*Mechanism, error) {
	return newMechanism(scram.SHA1, 160/8, "SCRAM-SHA-1", iters)
}

// SHA256 returns a new Mechanism instance using the SHA256 as its
// underlying hash algorithm and the given iterations count, which
// must be at least 4096.
func SHA256(iters int) (*Mechanism, error) {
	return newMechanism(scram.SHA256, 256/8, "SCRAM-SHA-256", iters)
}

func newMechanism(
	gen scram.HashGeneratorFcn, outLen int, name string, iters int,
) (*Mechanism, error) {
	if iters < 4096 {
		return nil, fmt.Errorf("iters (%d) is less than 4096", iters)
	}
	return &Mechanism{
		hashGenerator: gen,
		outLen:        outLen,
		name:          name,
		iters:         iters,
	}, nil
}

// Hash computes a hash string for the given non-empty password with
// a freshly generated random salt, following the standard scram hash
// format, so it can be stored and used later for verification.
//
// The returned string conforms to the following format and consists
// only of ASCII printable letters.
//
//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
func (m *Mechanism) Hash(pass string) (string, error) {
	if pass == "" {
		return "", errors.New("password must be non-empty")
	}
	saltBytes := make([]byte, m.outLen)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", fmt.Errorf("creating random salt: %w", err)
	}
	salt := base64.StdEncoding.EncodeToString(saltBytes)
	sc, err := m.storedCredentials(pass, salt, m.iters)
	if err != nil {
		return "", fmt.Errorf("obtaining stored credentials: %w", err)
	}
	h := fmt.Sprintf(
		"%s$%d:%s$%s:%s",
		m.name,
		m.iters, salt,
		base64.StdEncoding.EncodeToString(sc.StoredKey),
		base64.StdEncoding.EncodeToString(sc.ServerKey),
	)
	return h, nil
}

// Verify reports whether pass matches the stored hash string which
// was generated by the Hash method before. The salt and iterations
// count are recovered from the stored string itself, so a Mechanism
// can verify strings which were hashed with another iterations
// configuration (but not with another underlying hash algorithm).
// A malformed stored string is reported as an error, while a simple
// mismatch returns false with a nil error.
func (m *Mechanism) Verify(pass, stored string) (bool, error) {
	name, iters, salt, storedKey, err := parse(stored)
	if err != nil {
		return false, err
	}
	if name != m.name {
		return false, fmt.Errorf(
			"mechanism mismatch: stored %q, expected %q", name, m.name,
		)
	}
	sc, err := m.storedCredentials(pass, salt, iters)
	if err != nil {
		return false, fmt.Errorf("obtaining stored credentials: %w", err)
	}
	key := base64.StdEncoding.EncodeToString(sc.StoredKey)
	ok := subtle.ConstantTimeCompare(
		[]byte(key), []byte(storedKey),
	) == 1
	return ok, nil
}

// parse splits a standard scram hash string into its mechanism name,
// iterations count, base64 salt, and base64 storedKey components.
// The serverKey component is ignored as only the storedKey takes part
// in verification.
func parse(stored string) (
	name string, iters int, salt, storedKey string, err error,
) {
	parts := strings.Split(stored, "$")
	if len(parts) != 3 {
		err = errors.New("malformed scram hash string")
		return
	}
	name = parts[0]
	itersSalt := strings.SplitN(parts[1], ":", 2)
	keys := strings.SplitN(parts[2], ":", 2)
	if len(itersSalt) != 2 || len(keys) != 2 {
		err = errors.New("malformed scram hash string")
		return
	}
	iters, err = strconv.Atoi(itersSalt[0])
	if err != nil {
		err = fmt.Errorf("malformed iterations count: %w", err)
		return
	}
	if iters < 4096 {
		err = fmt.Errorf("iters (%d) is less than 4096", iters)
		return
	}
	salt = itersSalt[1]
	storedKey = keys[0]
	return
}

func (m *Mechanism) storedCredentials(
	pass, salt string, iters int,
) (*scram.StoredCredentials, error) {
	c, err := m.hashGenerator.NewClient("username", pass, "authzID")
	if err != nil {
		return nil, fmt.Errorf("creating SCRAM client: %w", err)
	}
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 salt: %w", err)
	}
	c = c.WithMinIterations(iters)
	sc := c.GetStoredCredentials(scram.KeyFactors{
		Salt:  string(saltBytes),
		Iters: iters,
	})
	return &sc, nil
}
