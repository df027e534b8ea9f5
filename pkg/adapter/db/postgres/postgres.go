// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres adapts the core repo interfaces to a PostgreSQL
// DBMS server using the GORM framework. The Pool, Conn, and Tx types
// wrap *gorm.DB instances, so the repository packages (which are
// allowed to depend on frameworks) may run their queries either with
// the GORM API or with raw SQL statements through the repo.Queryer
// interface. The table schema itself is managed by the stlmig1
// package.
package postgres
