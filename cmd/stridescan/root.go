/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package main

import (
	"fmt"
	"runtime"

	"github.com/dapr/kit/ptr"
	"github.com/spf13/cobra"

	"github.com/strideworks/stridescan/scan"
)

var (
	bound   uint64
	workers uint32
)

var rootCmd = &cobra.Command{
	Use:   "stridescan",
	Short: "Count primes below a bound with a fixed number of parallel workers",
	Long: `stridescan splits the range [0, bound) into interleaved partitions, one per
worker, counts the primes in each partition in parallel, and reduces the
per-worker counts into a total after all workers have finished.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		scanner, err := scan.New(scan.Options{
			Bound:   bound,
			Workers: ptr.Of(workers),
		})
		if err != nil {
			return err
		}

		res, err := scanner.Run(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d primes found\n", res.Total)
		fmt.Fprintf(out, "took %f sec\n", res.Elapsed.Seconds())
		return nil
	},
}

func init() {
	rootCmd.Flags().Uint64Var(&bound, "bound", 1_000_000, "exclusive upper limit of the scanned range")
	//nolint:gosec
	rootCmd.Flags().Uint32Var(&workers, "workers", uint32(runtime.GOMAXPROCS(0)), "number of parallel workers")
}
