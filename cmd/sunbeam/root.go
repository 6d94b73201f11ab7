package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grindlemire/go-sunbeam/internal/debug"
)

// cli carries state shared by the subcommands of one invocation.
type cli struct {
	v   *viper.Viper
	cfg Config
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "sunbeam",
		Short: "Spatial focus navigation with autoscroll for terminal UIs",
		Long: `sunbeam demonstrates directional focus navigation: arrow keys move focus
between tiles by geometry, and every scroll container keeps its focused tile
in view with an animated autoscroll.

Quick Start:
  sunbeam demo                         Run the demo
  sunbeam demo --zoom 2 --rows 20      Bigger grid, scaled layout
  sunbeam config > .sunbeam.yaml       Write the defaults to a config file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.load(cmd)
		},
	}
	addConfigFlags(root.PersistentFlags())

	root.AddCommand(
		newDemoCmd(c),
		newConfigCmd(c),
		newVersionCmd(),
	)
	return root
}

// load reads the config file, env and flags into c.cfg.
func (c *cli) load(cmd *cobra.Command) error {
	fs := cmd.Flags()
	v, err := newViper(fs)
	if err != nil {
		return err
	}
	path, _ := fs.GetString("config")
	if err := readConfigFile(v, path); err != nil {
		return err
	}
	cfg, err := decode(v)
	if err != nil {
		return err
	}
	if cfg.DebugLog != "" {
		if err := debug.Init(cfg.DebugLog); err != nil {
			return err
		}
	}
	debug.Log("sunbeam: config file=%q", v.ConfigFileUsed())

	c.v = v
	c.cfg = cfg
	return nil
}
