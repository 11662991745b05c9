// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <function> <value>",
	Short: "Write a camera setting",
	Long: `Write a single integer camera setting.

The function may be a catalogued name (see 'bosonctl functions') or a
raw hex code; the value is decimal or hex:

  bosonctl set dvoSetMipiState 2
  bosonctl set 0x00060024 0x02

Catalogued functions include the settle delay some camera transitions
need after the acknowledgement.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	fn, err := parseFunction(args[0])
	if err != nil {
		return err
	}
	value, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		return fmt.Errorf("invalid value %q: %v", args[1], err)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Client.SetInt(fn, uint32(value)); err != nil {
		return fmt.Errorf("%v: %w", fn, err)
	}
	fmt.Printf("%v = %d\n", fn, value)
	return nil
}
