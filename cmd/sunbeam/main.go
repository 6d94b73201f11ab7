// Package main provides the sunbeam demo CLI.
//
// Usage:
//
//	sunbeam demo [flags]      Run the interactive focus demo
//	sunbeam config [flags]    Print the effective configuration as YAML
//	sunbeam version           Print version information
//
// Configuration is read from --config (or SUNBEAM_CONFIG_FILE, or
// ./.sunbeam.yaml), then SUNBEAM_* environment variables, then flags.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
