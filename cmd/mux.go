// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/VideologyInc/bosonctl/pkg/fslp"
)

var muxCmd = &cobra.Command{
	Use:   "mux",
	Short: "Inspect and route the video output multiplexer",
	Long: `The camera routes its video pipeline taps to physical outputs
through a multiplexer. 'mux get' shows the current routing for an
output, 'mux set' changes it.`,
}

var muxGetCmd = &cobra.Command{
	Use:   "get <output>",
	Short: "Show the source and encoding routed to an output",
	Args:  cobra.ExactArgs(1),
	RunE:  runMuxGet,
}

var muxSetCmd = &cobra.Command{
	Use:   "set <output> <source> <type>",
	Short: "Route a source with an encoding to an output",
	Long: `Route a multiplexer source to an output with a pixel encoding.

  output: lcd, cmos, mipi
  source: ir, visible
  type:   mono14, color, mono8

Example:
  bosonctl mux set mipi ir color`,
	Args: cobra.ExactArgs(3),
	RunE: runMuxSet,
}

func init() {
	muxCmd.AddCommand(muxGetCmd)
	muxCmd.AddCommand(muxSetCmd)
	rootCmd.AddCommand(muxCmd)
}

var muxOutputs = map[string]fslp.MuxOutput{
	"lcd":  fslp.MuxOutputLCD,
	"cmos": fslp.MuxOutputCMOS,
	"mipi": fslp.MuxOutputMIPITX,
}

var muxSources = map[string]fslp.MuxSource{
	"ir":      fslp.MuxSourceIR,
	"visible": fslp.MuxSourceVisible,
}

var muxTypes = map[string]fslp.MuxType{
	"mono14": fslp.MuxTypeMono14,
	"color":  fslp.MuxTypeColor,
	"mono8":  fslp.MuxTypeMono8,
}

func muxName[T comparable](table map[string]T, value T) string {
	for name, v := range table {
		if v == value {
			return name
		}
	}
	return fmt.Sprintf("unknown(%v)", value)
}

func lookupMux[T any](kind string, table map[string]T, arg string) (T, error) {
	v, ok := table[strings.ToLower(arg)]
	if !ok {
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		var zero T
		return zero, fmt.Errorf("unknown %s %q (expected one of %s)", kind, arg, strings.Join(names, ", "))
	}
	return v, nil
}

func runMuxGet(cmd *cobra.Command, args []string) error {
	output, err := lookupMux("output", muxOutputs, args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	source, typ, err := s.Client.GetMuxType(output)
	if err != nil {
		return fmt.Errorf("read mux routing: %w", err)
	}
	fmt.Printf("%s <- %s (%s)\n",
		muxName(muxOutputs, output),
		muxName(muxSources, source),
		muxName(muxTypes, typ))
	return nil
}

func runMuxSet(cmd *cobra.Command, args []string) error {
	output, err := lookupMux("output", muxOutputs, args[0])
	if err != nil {
		return err
	}
	source, err := lookupMux("source", muxSources, args[1])
	if err != nil {
		return err
	}
	typ, err := lookupMux("type", muxTypes, args[2])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Client.SetMuxType(output, source, typ); err != nil {
		return fmt.Errorf("route mux: %w", err)
	}
	fmt.Printf("%s <- %s (%s)\n", args[0], args[1], args[2])
	return nil
}
