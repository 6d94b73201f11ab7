package termhost

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	sunbeam "github.com/grindlemire/go-sunbeam"
	"github.com/grindlemire/go-sunbeam/internal/debug"
)

// FrameInterval is the animation tick period.
const FrameInterval = time.Second / 60

// errQuit ends the event loop without reporting an error.
var errQuit = errors.New("quit")

// Host owns a tcell screen and the scene drawn on it.
type Host struct {
	screen  tcell.Screen
	scene   *scene
	reloads chan Config
}

// New builds the scene for cfg sized to screen, which must already be
// initialized.
func New(screen tcell.Screen, cfg Config) (*Host, error) {
	width, height := screen.Size()
	sc, err := newScene(cfg, width, height)
	if err != nil {
		return nil, err
	}
	return &Host{screen: screen, scene: sc, reloads: make(chan Config, 1)}, nil
}

// Container returns the focus container of the current scene.
func (h *Host) Container() *sunbeam.Container {
	return h.scene.container
}

// FocusPath returns the focused leaf's path.
func (h *Host) FocusPath() []string {
	return h.scene.container.FocusPath()
}

// Reload queues cfg to replace the scene on the next frame. A reload
// that has not been applied yet is replaced.
func (h *Host) Reload(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("reload: %w", err)
	}
	for {
		select {
		case h.reloads <- cfg:
			return nil
		default:
		}
		select {
		case <-h.reloads:
		default:
		}
	}
}

// apply rebuilds the scene from cfg, keeping focus on the same key if it
// still exists.
func (h *Host) apply(cfg Config) error {
	width, height := h.screen.Size()
	sc, err := newScene(cfg, width, height)
	if err != nil {
		return err
	}

	var prev string
	if t := h.scene.focused(); t != nil {
		prev = t.key
	}
	h.scene.unmount()
	h.scene = sc
	if prev != "" {
		sc.container.Focus(prev)
	}
	debug.Log("termhost.Host.apply: reloaded, focus=%s", prev)
	return nil
}

// HandleEvent applies one terminal event and reports whether the demo
// should quit.
func (h *Host) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuit(ev) {
			return true
		}
		key := keyName(ev)
		switch key {
		case sunbeam.KeyEnter, sunbeam.KeySpace:
			h.scene.selectFocused()
		case sunbeam.KeyTab:
			h.scene.container.Manager().Next()
		case sunbeam.KeyBacktab:
			h.scene.container.Manager().Prev()
		case sunbeam.KeyNone:
		default:
			h.scene.container.HandleKey(key)
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			if t := h.scene.tileAt(x, y); t != nil {
				t.focus.Tap()
			}
		}
	case *tcell.EventResize:
		width, height := ev.Size()
		h.scene.resize(width, height)
		h.screen.Sync()
	}
	return false
}

// Tick advances the animations by dt.
func (h *Host) Tick(dt time.Duration) bool {
	return h.scene.tick(dt)
}

// Draw renders the current frame.
func (h *Host) Draw() {
	h.scene.draw(h.screen)
	h.screen.Show()
}

// Run runs the event loop until the user quits or ctx is cancelled. The
// screen is finalized before Run returns.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.screen.HideCursor()

	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 16)

	g.Go(func() error {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})
	g.Go(func() error {
		// Fini unblocks PollEvent above.
		defer h.screen.Fini()
		return h.loop(ctx, events)
	})

	err := g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (h *Host) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	h.Draw()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if h.HandleEvent(ev) {
				return errQuit
			}
			h.Draw()
		case cfg := <-h.reloads:
			if err := h.apply(cfg); err != nil {
				debug.Log("termhost.Host.loop: reload failed: %v", err)
				continue
			}
			h.Draw()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			if h.Tick(dt) {
				h.Draw()
			}
		}
	}
}
