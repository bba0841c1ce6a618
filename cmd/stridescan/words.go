/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strideworks/stridescan/internal/words"
)

const defaultSentence = "break a link in-life either through termination of child or through a customer"

var wordsCmd = &cobra.Command{
	Use:   "words [text...]",
	Short: "Print a sentence with its characters and word order reversed",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := defaultSentence
		if len(args) > 0 {
			input = strings.Join(args, " ")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, input)
		fmt.Fprintln(out, words.Reverse(input))
		fmt.Fprintln(out, words.ReverseWords(input))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(wordsCmd)
}
