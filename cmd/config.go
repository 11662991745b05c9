// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// fileConfig maps the config.toml keys onto the connection flags.
type fileConfig struct {
	I2CBus   int    `toml:"i2c_bus"`
	I2CAddr  uint8  `toml:"i2c_addr"`
	Port     string `toml:"port"`
	Baud     int    `toml:"baud"`
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Trace    string `toml:"trace"`
}

// applyConfigFile overlays connection defaults from the TOML file named
// by --config. Only keys actually present in the file apply, and a flag
// set on the command line always wins over the file.
func applyConfigFile(cmd *cobra.Command) error {
	if configPath == "" {
		return nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(configPath, &raw)
	if err != nil {
		return fmt.Errorf("load config %s: %w", configPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("load config %s: unknown keys: %s", configPath, strings.Join(keys, ", "))
	}

	flags := cmd.Root().PersistentFlags()
	if meta.IsDefined("i2c_bus") && !flags.Changed("i2c") {
		i2cBus = raw.I2CBus
	}
	if meta.IsDefined("i2c_addr") && !flags.Changed("i2c-addr") {
		i2cAddr = raw.I2CAddr
	}
	if meta.IsDefined("port") && !flags.Changed("port") {
		portName = strings.TrimSpace(raw.Port)
	}
	if meta.IsDefined("baud") && !flags.Changed("baud") {
		baudRate = raw.Baud
	}
	if meta.IsDefined("url") && !flags.Changed("url") {
		wsURL = strings.TrimSpace(raw.URL)
	}
	if meta.IsDefined("username") && !flags.Changed("username") {
		wsUsername = strings.TrimSpace(raw.Username)
	}
	if meta.IsDefined("trace") && !flags.Changed("trace") {
		tracePath = strings.TrimSpace(raw.Trace)
	}
	return nil
}
