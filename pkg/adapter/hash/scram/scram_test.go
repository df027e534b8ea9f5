// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package scram_test

import (
	"strings"
	"testing"

	"github.com/ozkat/fleetweb/pkg/adapter/hash/scram"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMechanismInstantiation(t *testing.T) {
	t.Run("low iters are rejected", func(t *testing.T) {
		_, err := scram.SHA256(4095)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "4096")
	})
	t.Run("minimum iters are accepted", func(t *testing.T) {
		m, err := scram.SHA256(4096)
		require.NoError(t, err)
		assert.NotNil(t, m)
	})
}

func TestHashAndVerify(t *testing.T) {
	m, err := scram.SHA256(scram.DefaultIters)
	require.NoError(t, err)

	h, err := m.Hash("admin123")
	require.NoError(t, err)
	assert.True(
		t, strings.HasPrefix(h, "SCRAM-SHA-256$15000:"),
		"unexpected hash prefix: %q", h,
	)

	ok, err := m.Verify("admin123", h)
	require.NoError(t, err)
	assert.True(t, ok, "matching password must verify")

	ok, err = m.Verify("admin124", h)
	require.NoError(t, err)
	assert.False(t, ok, "mismatch must report false without error")
}

func TestHashesAreSalted(t *testing.T) {
	m, err := scram.SHA256(scram.DefaultIters)
	require.NoError(t, err)
	h1, err := m.Hash("user123")
	require.NoError(t, err)
	h2, err := m.Hash("user123")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2, "each hash must use a fresh salt")
}

func TestEmptyPasswordIsRejected(t *testing.T) {
	m, err := scram.SHA256(scram.DefaultIters)
	require.NoError(t, err)
	_, err = m.Hash("")
	assert.Error(t, err)
}

func TestVerifyAcrossItersConfigs(t *testing.T) {
	weak, err := scram.SHA256(4096)
	require.NoError(t, err)
	strong, err := scram.SHA256(scram.DefaultIters)
	require.NoError(t, err)

	h, err := weak.Hash("admin123")
	require.NoError(t, err)
	ok, err := strong.Verify("admin123", h)
	require.NoError(t, err)
	assert.True(
		t, ok, "iters must be recovered from the stored string",
	)
}

func TestVerifyMalformedStored(t *testing.T) {
	m, err := scram.SHA256(scram.DefaultIters)
	require.NoError(t, err)
	for _, tc := range []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"no dollars", "SCRAM-SHA-256"},
		{"missing keys part", "SCRAM-SHA-256$15000:c2FsdA=="},
		{"non-numeric iters", "SCRAM-SHA-256$x:c2FsdA==$a:b"},
		{"low iters", "SCRAM-SHA-256$64:c2FsdA==$a:b"},
		{"wrong mechanism", "SCRAM-SHA-1$15000:c2FsdA==$a:b"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Verify("admin123", tc.stored)
			assert.Error(t, err)
		})
	}
}
