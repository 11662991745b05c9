// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// I2C connection flags
	i2cBus  int
	i2cAddr uint8

	// Serial connection flags
	portName string
	baudRate int

	// WebSocket connection flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool

	configPath string
	tracePath  string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "bosonctl",
	Short: "Boson thermal camera control tool",
	Long: `bosonctl - Configure FLIR Boson thermal camera modules over their
serial-link protocol.

Provides commands for reading camera identity, running flat-field
correction, configuring the video output multiplexer, and bringing the
MIPI stream up or down.

Connection modes:
  I2C:       --i2c 2 [--i2c-addr 0x6A]
  Serial:    --port /dev/ttyUSB0 [--baud 921600]
  WebSocket: --url ws://host/path [--username user]

For WebSocket authentication, the password is read from the
BOSONCTL_PASSWORD environment variable, or prompted interactively if not
set. The --password flag is intentionally not provided to avoid leaking
credentials in shell history.

Connection defaults can also come from a TOML config file (--config);
command-line flags win over the file.`,
	Version: "1.2.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		}
		return applyConfigFile(cmd)
	},
}

func init() {
	// I2C connection flags
	rootCmd.PersistentFlags().IntVar(&i2cBus, "i2c", -1, "I2C bus number (e.g. 2 for /dev/i2c-2)")
	rootCmd.PersistentFlags().Uint8Var(&i2cAddr, "i2c-addr", 0x6A, "Camera I2C address")

	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 921600, "Baud rate (serial only)")

	// WebSocket connection flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file with connection defaults")
	rootCmd.PersistentFlags().StringVar(&tracePath, "trace", "", "Record every transaction to a CBOR trace file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Wire-level debug logging")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
