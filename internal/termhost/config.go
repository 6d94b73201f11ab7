package termhost

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	sunbeam "github.com/grindlemire/go-sunbeam"
)

// Config describes the demo scene.
type Config struct {
	// Rows and Cols size the tile grid.
	Rows int `mapstructure:"rows" yaml:"rows"`
	Cols int `mapstructure:"cols" yaml:"cols"`
	// MenuItems is the number of entries in the side menu.
	MenuItems int `mapstructure:"menu_items" yaml:"menu_items"`
	// Zoom is the number of terminal cells per layout unit. Values other
	// than 1 exercise scale compensation in the autoscroll engine.
	Zoom float64 `mapstructure:"zoom" yaml:"zoom"`

	FocusColor string `mapstructure:"focus_color" yaml:"focus_color"`
	BlurColor  string `mapstructure:"blur_color" yaml:"blur_color"`

	Keys sunbeam.KeyConfig    `mapstructure:"keys" yaml:"keys"`
	Menu sunbeam.ScrollConfig `mapstructure:"menu" yaml:"menu"`
	Grid sunbeam.ScrollConfig `mapstructure:"grid" yaml:"grid"`
}

// DefaultConfig returns the stock demo scene.
func DefaultConfig() Config {
	menu := sunbeam.DefaultScrollConfig()
	menu.Direction = "vertical"
	menu.Overflow = false
	menu.Fill = "#2d2a2e"

	grid := sunbeam.DefaultScrollConfig()
	grid.Overflow = false
	grid.Fill = "#221f22"

	return Config{
		Rows:       8,
		Cols:       10,
		MenuItems:  16,
		Zoom:       1,
		FocusColor: "#fed765",
		BlurColor:  "#5b595c",
		Keys:       sunbeam.DefaultKeyConfig(),
		Menu:       menu,
		Grid:       grid,
	}
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	if c.Rows < 1 || c.Cols < 1 {
		errs = append(errs, fmt.Errorf("%w: grid must be at least 1x1, got %dx%d", sunbeam.ErrInvalidConfig, c.Rows, c.Cols))
	}
	if c.MenuItems < 1 {
		errs = append(errs, fmt.Errorf("%w: menu_items must be positive, got %d", sunbeam.ErrInvalidConfig, c.MenuItems))
	}
	if c.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("%w: zoom must be positive, got %v", sunbeam.ErrInvalidConfig, c.Zoom))
	}
	if _, _, err := c.colors(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Keys.KeyMap(); err != nil {
		errs = append(errs, fmt.Errorf("keys: %w", err))
	}
	if err := c.Menu.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("menu: %w", err))
	}
	if err := c.Grid.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("grid: %w", err))
	}
	return errors.Join(errs...)
}

func (c Config) colors() (focus, blur colorful.Color, err error) {
	focus, err = colorful.Hex(c.FocusColor)
	if err != nil {
		return focus, blur, fmt.Errorf("%w: focus_color %q: %w", sunbeam.ErrInvalidConfig, c.FocusColor, err)
	}
	blur, err = colorful.Hex(c.BlurColor)
	if err != nil {
		return focus, blur, fmt.Errorf("%w: blur_color %q: %w", sunbeam.ErrInvalidConfig, c.BlurColor, err)
	}
	return focus, blur, nil
}
