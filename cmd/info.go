// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VideologyInc/bosonctl/pkg/fslp"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Read camera identity and firmware version",
	Long: `Query the camera for its part number, serial numbers and firmware
revision.

Useful as a first connectivity check: if info succeeds, the link and the
protocol session are healthy.`,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	pn, err := s.Client.CameraPN()
	if err != nil {
		return fmt.Errorf("read part number: %w", err)
	}
	cameraSN, err := s.Client.CameraSN()
	if err != nil {
		return fmt.Errorf("read camera serial: %w", err)
	}
	sensorSN, err := s.Client.SensorSN()
	if err != nil {
		return fmt.Errorf("read sensor serial: %w", err)
	}
	major, minor, patch, err := s.Client.SoftwareRev()
	if err != nil {
		return fmt.Errorf("read firmware revision: %w", err)
	}

	fmt.Printf("Connection:  %s\n", s.ConnInfo)
	fmt.Printf("Part number: %s\n", pn)
	fmt.Printf("Camera S/N:  %d\n", cameraSN)
	fmt.Printf("Sensor S/N:  %d\n", sensorSN)
	fmt.Printf("Firmware:    %d.%d.%d\n", major, minor, patch)

	// Boot timestamp is not present on every firmware line; report it
	// opportunistically.
	if ts, err := s.Client.GetInt(fslp.BosonGetBootTimestamp); err == nil {
		fmt.Printf("Boot stamp:  %d\n", ts)
	}
	return nil
}
