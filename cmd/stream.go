// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/VideologyInc/bosonctl/pkg/fslp"
)

var streamRaw bool

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Control the MIPI video stream",
	Long: `Bring the camera's MIPI transmitter up or down.

'stream start' runs the full bring-up sequence: transmitter off,
pipeline tap and pixel format staged, multiplexer routed, interface
selected, transmitter activated. 'stream stop' shuts the transmitter
down. 'stream status' reports the current transmitter state.`,
}

var streamStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the MIPI stream",
	RunE:  runStreamStart,
}

var streamStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the MIPI stream",
	RunE:  runStreamStop,
}

var streamStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the MIPI transmitter state",
	RunE:  runStreamStatus,
}

func init() {
	streamStartCmd.Flags().BoolVar(&streamRaw, "raw", false, "Stream 16-bit radiometric data instead of colorized video")
	streamCmd.AddCommand(streamStartCmd)
	streamCmd.AddCommand(streamStopCmd)
	streamCmd.AddCommand(streamStatusCmd)
	rootCmd.AddCommand(streamCmd)
}

func mipiStateName(state fslp.MipiState) string {
	switch state {
	case fslp.MipiStateOff:
		return "off"
	case fslp.MipiStateStandby:
		return "standby"
	case fslp.MipiStateActive:
		return "active"
	}
	return fmt.Sprintf("unknown(%d)", state)
}

func runStreamStart(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := fslp.ColorStream
	if streamRaw {
		cfg = fslp.RawStream
	}
	if err := s.Client.StartMipiStream(cfg); err != nil {
		return fmt.Errorf("start stream: %w", err)
	}

	state, err := s.Client.MipiState()
	if err != nil {
		return fmt.Errorf("verify stream state: %w", err)
	}
	fmt.Printf("MIPI stream: %s\n", mipiStateName(state))
	return nil
}

func runStreamStop(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Client.StopMipiStream(); err != nil {
		return fmt.Errorf("stop stream: %w", err)
	}
	fmt.Println("MIPI stream: off")
	return nil
}

func runStreamStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	state, err := s.Client.MipiState()
	if err != nil {
		return fmt.Errorf("read stream state: %w", err)
	}
	fmt.Printf("MIPI stream: %s\n", mipiStateName(state))
	return nil
}
