// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/VideologyInc/bosonctl/pkg/fslp"
)

var getCmd = &cobra.Command{
	Use:   "get <function>",
	Short: "Read a camera setting",
	Long: `Read a single integer camera setting.

The function may be a catalogued name (see 'bosonctl functions') or a
raw hex code:

  bosonctl get dvoGetMipiState
  bosonctl get 0x00060026`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

// parseFunction resolves a catalog name or a numeric code.
func parseFunction(arg string) (fslp.FunctionCode, error) {
	if fn, ok := fslp.FunctionByName(arg); ok {
		return fn, nil
	}
	code, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown function %q (not a catalog name or hex code)", arg)
	}
	return fslp.FunctionCode(code), nil
}

func runGet(cmd *cobra.Command, args []string) error {
	fn, err := parseFunction(args[0])
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	value, err := s.Client.GetInt(fn)
	if err != nil {
		return fmt.Errorf("%v: %w", fn, err)
	}
	fmt.Printf("%v = %d (0x%08X)\n", fn, value, value)
	return nil
}
