// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.
//
// bosonctl - Boson thermal camera control tool
//
// A CLI tool for configuring FLIR Boson camera modules over their
// serial-link protocol, via I2C, UART or a WebSocket bridge.

package main

import (
	"os"

	"github.com/VideologyInc/bosonctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
