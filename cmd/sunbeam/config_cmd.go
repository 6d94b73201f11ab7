package main

import (
	"github.com/spf13/cobra"
)

func newConfigCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Long: `Print the configuration after merging defaults, the config file,
SUNBEAM_* environment variables and flags.

Examples:
  sunbeam config
  sunbeam config --zoom 2 --direction vertical
  SUNBEAM_GRID_FILL=none sunbeam config`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeYAML(cmd.OutOrStdout(), c.cfg)
		},
	}
}
