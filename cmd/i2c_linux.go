// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

//go:build linux

package cmd

import (
	"fmt"
	"os"
	"syscall"
)

// I2C_SLAVE ioctl from linux/i2c-dev.h selects the peripheral address
// for subsequent plain read()/write() calls on the adapter node.
const i2cSlave = 0x0703

// I2CConnection talks FSLP through a Linux I2C adapter character device.
// The camera exposes its command channel as a plain I2C peripheral, so
// byte-level reads and writes on the selected address are all it takes.
type I2CConnection struct {
	f *os.File
}

func (c *I2CConnection) Read(p []byte) (int, error) {
	return c.f.Read(p)
}

func (c *I2CConnection) Write(p []byte) (int, error) {
	return c.f.Write(p)
}

func (c *I2CConnection) Close() error {
	return c.f.Close()
}

// OpenI2CConnection opens /dev/i2c-<bus> and binds it to the camera's
// peripheral address.
func OpenI2CConnection(bus int, addr uint8) (Connection, error) {
	path := fmt.Sprintf("/dev/i2c-%d", bus)
	f, err := os.OpenFile(path, os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}
	if _, _, errno := syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), i2cSlave, uintptr(addr)); errno != 0 {
		f.Close()
		return nil, fmt.Errorf("failed to select I2C address 0x%02X on %s: %v", addr, path, errno)
	}
	return &I2CConnection{f: f}, nil
}
