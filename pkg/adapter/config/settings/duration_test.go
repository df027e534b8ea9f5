// Copyright (c) 2025 Ozan Kat
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"fmt"
	"time"

	"github.com/ozkat/fleetweb/pkg/adapter/config/settings"
)

func ExampleDuration_Marshal() {
	d := settings.Duration(2 * time.Minute)
	fmt.Println(*d.Marshal())
	// Output:
	// 2m
}

func ExampleDuration_Marshal_nil() {
	var d *settings.Duration
	fmt.Println(d.Marshal())
	// Output:
	// <nil>
}

func ExampleDuration_UnmarshalText() {
	var d settings.Duration
	err := d.UnmarshalText([]byte("1h30m"))
	fmt.Println(err)
	fmt.Println(time.Duration(d))
	// Output:
	// <nil>
	// 1h30m0s
}
