// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var ffcCmd = &cobra.Command{
	Use:   "ffc",
	Short: "Run a flat-field correction",
	Long: `Trigger a flat-field correction. The camera closes its shutter,
recalibrates against the uniform scene, and reopens it; the command
returns once the shutter cycle has settled.`,
	RunE: runFFC,
}

func init() {
	rootCmd.AddCommand(ffcCmd)
}

func runFFC(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Client.RunFFC(); err != nil {
		return fmt.Errorf("flat-field correction: %w", err)
	}
	fmt.Println("FFC complete")
	return nil
}
