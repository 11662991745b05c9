// SPDX-License-Identifier: GPL-2.0-or-later
// Copyright (c) 2026 Videology Inc.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/VideologyInc/bosonctl/pkg/fslp"
)

var traceCmd = &cobra.Command{
	Use:   "trace <file>",
	Short: "Dump a recorded transaction trace",
	Long: `Print the transactions from a CBOR trace file recorded with the
--trace flag, one line per command/response pair.`,
	Args: cobra.ExactArgs(1),
	RunE: runTrace,
}

func init() {
	rootCmd.AddCommand(traceCmd)
}

func runTrace(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := fslp.ReadTrace(f)
	if err != nil {
		return fmt.Errorf("read trace %s: %w", args[0], err)
	}

	for _, rec := range records {
		fn := fslp.FunctionCode(rec.Function)
		status := fslp.ResultCode(rec.Status)
		line := fmt.Sprintf("%s  seq=%-6d %-32v status=%s",
			rec.Time.Format("15:04:05.000"), rec.Sequence, fn, status.Name())
		if len(rec.Args) > 0 {
			line += fmt.Sprintf("  args=% X", rec.Args)
		}
		if len(rec.Result) > 0 {
			line += fmt.Sprintf("  result=% X", rec.Result)
		}
		if rec.Err != "" {
			line += "  err=" + rec.Err
		}
		fmt.Println(line)
	}
	fmt.Printf("%d transactions\n", len(records))
	return nil
}
