package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-sunbeam/internal/debug"
	"github.com/grindlemire/go-sunbeam/internal/termhost"
)

func newDemoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the interactive focus demo",
		Long: `Run a terminal demo with a vertical menu and a scrolling grid of tiles.

Keys:
  arrows        move focus
  tab           next tile in order
  enter, space  select the focused tile
  q, esc        quit

Clicking a tile focuses it. When a config file is in use, saving it
rebuilds the scene with the new settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return c.runDemo(ctx)
		},
	}
}

func (c *cli) runDemo(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	host, err := termhost.New(screen, c.cfg.Config)
	if err != nil {
		screen.Fini()
		return err
	}

	if c.v.ConfigFileUsed() != "" {
		c.v.OnConfigChange(func(e fsnotify.Event) {
			c.reload(host, e)
		})
		c.v.WatchConfig()
	}

	return host.Run(ctx)
}

// reload re-decodes the config after the file changed and hands it to the
// host. Invalid edits are logged and ignored so the demo keeps running.
func (c *cli) reload(host *termhost.Host, e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	cfg, err := decode(c.v)
	if err != nil {
		debug.Log("sunbeam: ignoring config change %s: %v", e.Name, err)
		return
	}
	if err := host.Reload(cfg.Config); err != nil {
		debug.Log("sunbeam: reload failed: %v", err)
		return
	}
	debug.Log("sunbeam: reloaded %s", e.Name)
}
