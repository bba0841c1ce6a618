/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/strideworks/stridescan/internal/sequence"
)

var sequenceCmd = &cobra.Command{
	Use:   "sequence [integers...]",
	Short: "Print a sequence of integers reversed and shuffled",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := []int{70, 71, 72, 73, 74, 75, 76, 77, 78, 79}
		if len(args) > 0 {
			input = make([]int, len(args))
			for i, arg := range args {
				v, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("failed to parse integer %q: %w", arg, err)
				}
				input[i] = v
			}
		}

		shuffled, err := sequence.Shuffle(input)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "input:    %v\n", input)
		fmt.Fprintf(out, "reversed: %v\n", sequence.Reverse(input))
		fmt.Fprintf(out, "shuffled: %v\n", shuffled)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sequenceCmd)
}
