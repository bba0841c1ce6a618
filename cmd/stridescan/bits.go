/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strideworks/stridescan/internal/bitdump"
)

var bitsCmd = &cobra.Command{
	Use:   "bits [text]",
	Short: "Print each byte of the input as hex and bits, least significant bit first",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := "c"
		if len(args) > 0 {
			input = strings.Join(args, " ")
		}

		out := cmd.OutOrStdout()
		for _, line := range bitdump.Dump([]byte(input)) {
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(bitsCmd)
}
