// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/VideologyInc/bosonctl/pkg/fslp"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List catalogued camera functions",
	Long: `List every catalogued function with its code and argument/result
shape, for use with 'bosonctl get' and 'bosonctl set'.`,
	RunE: runFunctions,
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}

func runFunctions(cmd *cobra.Command, args []string) error {
	fns := fslp.Functions()
	sort.Slice(fns, func(i, j int) bool { return fns[i] < fns[j] })

	for _, fn := range fns {
		shape, _ := fslp.Shape(fn)
		fmt.Printf("0x%08X  %-32s  args=%-3d result=%d\n",
			uint32(fn), fn, shape.ArgBytes, shape.ResultBytes)
	}
	return nil
}
