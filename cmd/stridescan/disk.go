/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

//go:build linux

package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/strideworks/stridescan/internal/diskusage"
)

var diskCmd = &cobra.Command{
	Use:   "disk [path]",
	Short: "Print the capacity of the filesystem holding a path",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/"
		if len(args) > 0 {
			path = args[0]
		}

		info, err := diskusage.Query(path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s used of %s (%s free, %s available)\n",
			path,
			humanize.IBytes(info.Used),
			humanize.IBytes(info.Size),
			humanize.IBytes(info.Free),
			humanize.IBytes(info.Available),
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diskCmd)
}
