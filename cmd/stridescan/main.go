/*
Copyright (c) 2024 Diagrid Inc.
Licensed under the MIT License.
*/

package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
