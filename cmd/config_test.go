// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bosonctl.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func resetConnectionFlags(t *testing.T) {
	t.Helper()
	i2cBus, i2cAddr = -1, 0x6A
	portName, baudRate = "", 921600
	wsURL, wsUsername = "", ""
	configPath, tracePath = "", ""
	t.Cleanup(func() {
		i2cBus, i2cAddr = -1, 0x6A
		portName, baudRate = "", 921600
		wsURL, wsUsername = "", ""
		configPath, tracePath = "", ""
	})
}

func TestApplyConfigFile_Overlay(t *testing.T) {
	resetConnectionFlags(t)
	configPath = writeConfig(t, `
i2c_bus = 2
i2c_addr = 0x6A
baud = 115200
username = "operator"
`)

	if err := applyConfigFile(rootCmd); err != nil {
		t.Fatalf("applyConfigFile: %v", err)
	}
	if i2cBus != 2 {
		t.Errorf("i2c_bus: got %d, want 2", i2cBus)
	}
	if baudRate != 115200 {
		t.Errorf("baud: got %d, want 115200", baudRate)
	}
	if wsUsername != "operator" {
		t.Errorf("username: got %q", wsUsername)
	}
	// Keys absent from the file keep their defaults.
	if portName != "" {
		t.Errorf("port: got %q, want empty", portName)
	}
}

func TestApplyConfigFile_UnknownKey(t *testing.T) {
	resetConnectionFlags(t)
	configPath = writeConfig(t, "i2c_buss = 2\n")

	if err := applyConfigFile(rootCmd); err == nil {
		t.Fatal("expected an error for an unknown key")
	}
}

func TestApplyConfigFile_NoFileConfigured(t *testing.T) {
	resetConnectionFlags(t)
	if err := applyConfigFile(rootCmd); err != nil {
		t.Fatalf("applyConfigFile without --config: %v", err)
	}
}
