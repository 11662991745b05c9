// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

//go:build !linux

package cmd

import "fmt"

// OpenI2CConnection is Linux-only; the adapter character device has no
// portable equivalent. Serial and WebSocket modes work everywhere.
func OpenI2CConnection(bus int, addr uint8) (Connection, error) {
	return nil, fmt.Errorf("I2C connections require Linux (wanted /dev/i2c-%d @ 0x%02X)", bus, addr)
}
