package sunbeam

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-sunbeam/internal/debug"
)

// Container is the root of a focus tree. It owns the FocusChangeBus and the
// FocusManager, and turns key presses into directional moves.
//
// Scrolls mount on Scope() (or on each other's scopes) and Focusables mount
// on the Container itself.
type Container struct {
	bus     *FocusChangeBus
	manager *FocusManager
	keys    KeyMap

	onKeyPress  func(Key)
	managerOpts []ManagerOption

	err error
}

// Compile-time interface checks.
var (
	_ FocusTree = (*Container)(nil)
	_ Navigator = (*Container)(nil)
)

// ContainerOption configures a Container.
type ContainerOption func(*Container)

// WithKeyMap replaces the default arrow-key bindings.
func WithKeyMap(km KeyMap) ContainerOption {
	return func(c *Container) {
		c.keys = slices.Clone(km)
	}
}

// WithKeyConfig replaces the default bindings with a parsed KeyConfig.
func WithKeyConfig(cfg KeyConfig) ContainerOption {
	return func(c *Container) {
		km, err := cfg.KeyMap()
		if err != nil {
			if c.err == nil {
				c.err = err
			}
			return
		}
		c.keys = km
	}
}

// WithOnKeyPress is called with every key handed to HandleKey, before any
// focus move.
func WithOnKeyPress(fn func(Key)) ContainerOption {
	return func(c *Container) {
		c.onKeyPress = fn
	}
}

// WithManagerOptions passes options through to the FocusManager, e.g.
// WithOnFocusUpdate or WithPreferredChild.
func WithManagerOptions(opts ...ManagerOption) ContainerOption {
	return func(c *Container) {
		c.managerOpts = append(c.managerOpts, opts...)
	}
}

// NewContainer creates a Container with its own bus and focus manager.
func NewContainer(opts ...ContainerOption) (*Container, error) {
	c := &Container{
		bus:  NewFocusChangeBus(),
		keys: DefaultKeyMap(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.err != nil {
		return nil, fmt.Errorf("new container: %w", c.err)
	}
	c.manager = NewFocusManager(c.managerOpts...)
	return c, nil
}

// MustNewContainer creates a Container and panics on error.
func MustNewContainer(opts ...ContainerOption) *Container {
	c, err := NewContainer(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Bus returns the container's FocusChangeBus.
func (c *Container) Bus() *FocusChangeBus {
	return c.bus
}

// Scope returns the root bus scope.
func (c *Container) Scope() *Scope {
	return c.bus.Root()
}

// Manager returns the focus manager.
func (c *Container) Manager() *FocusManager {
	return c.manager
}

// KeyMap returns a copy of the active key bindings.
func (c *Container) KeyMap() KeyMap {
	return slices.Clone(c.keys)
}

// Register adds a leaf to the focus manager.
func (c *Container) Register(leaf Leaf) (func(), error) {
	return c.manager.Register(leaf)
}

// Focus moves focus to the leaf with key.
func (c *Container) Focus(key string) bool {
	return c.manager.Focus(key)
}

// FocusPath returns the focused leaf's path, or nil.
func (c *Container) FocusPath() []string {
	_, path, _ := c.manager.Focused()
	return path
}

// MoveUp moves focus up.
func (c *Container) MoveUp() bool { return c.manager.MoveUp() }

// MoveDown moves focus down.
func (c *Container) MoveDown() bool { return c.manager.MoveDown() }

// MoveLeft moves focus left.
func (c *Container) MoveLeft() bool { return c.manager.MoveLeft() }

// MoveRight moves focus right.
func (c *Container) MoveRight() bool { return c.manager.MoveRight() }

// HandleKey forwards key to the key press callback, then performs the move
// bound to it. It reports whether the key is bound, whether or not focus
// actually moved.
func (c *Container) HandleKey(key Key) bool {
	if c.onKeyPress != nil {
		c.onKeyPress(key)
	}

	dir, ok := c.keys.Lookup(key)
	if !ok {
		return false
	}
	moved := c.manager.Move(dir)
	debug.Log("Container.HandleKey: %s -> %s moved=%v", key, dir, moved)
	return true
}
