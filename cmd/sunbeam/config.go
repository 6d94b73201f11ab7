package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-sunbeam/internal/termhost"
)

// envPrefix prefixes every environment override, e.g. SUNBEAM_GRID_DIRECTION.
const envPrefix = "SUNBEAM"

// Config is everything the CLI reads from files, env and flags.
type Config struct {
	termhost.Config `mapstructure:",squash" yaml:",inline"`

	// DebugLog, when set, enables the debug log at this path.
	DebugLog string `mapstructure:"debug_log" yaml:"debug_log,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{Config: termhost.DefaultConfig()}
}

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"rows":                  "rows",
	"cols":                  "cols",
	"menu-items":            "menu_items",
	"zoom":                  "zoom",
	"direction":             "grid.direction",
	"vertical-stickiness":   "grid.vertical_stickiness",
	"horizontal-stickiness": "grid.horizontal_stickiness",
	"debug-log":             "debug_log",
}

// addConfigFlags registers the flags that override config values.
func addConfigFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String("config", "", "config file (default is ./.sunbeam.yaml, can also use SUNBEAM_CONFIG_FILE)")
	fs.Int("rows", d.Rows, "number of grid rows")
	fs.Int("cols", d.Cols, "number of grid columns")
	fs.Int("menu-items", d.MenuItems, "number of menu entries")
	fs.Float64("zoom", d.Zoom, "terminal cells per layout unit")
	fs.String("direction", d.Grid.Direction, "grid scroll direction (vertical, horizontal, both)")
	fs.String("vertical-stickiness", d.Grid.VerticalStickiness, "grid vertical stickiness (auto, top, bottom)")
	fs.String("horizontal-stickiness", d.Grid.HorizontalStickiness, "grid horizontal stickiness (auto, left, right)")
	fs.String("debug-log", "", "write debug output to this file")
}

// newViper builds a viper instance with defaults, environment binding and
// flag binding. The config file is not read yet.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	if err := setDefaults(v, DefaultConfig()); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		if f := fs.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}
	return v, nil
}

// setDefaults registers every field of cfg as a viper default, so that
// AutomaticEnv can find nested keys.
func setDefaults(v *viper.Viper, cfg Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal defaults: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return fmt.Errorf("unmarshal defaults: %w", err)
	}
	for key, val := range flatten("", tree) {
		v.SetDefault(key, val)
	}
	return nil
}

func flatten(prefix string, tree map[string]any) map[string]any {
	out := make(map[string]any)
	for k, val := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := val.(map[string]any); ok {
			for sk, sv := range flatten(key, sub) {
				out[sk] = sv
			}
			continue
		}
		out[key] = val
	}
	return out
}

// readConfigFile points v at the config file and reads it. A missing
// default file is not an error; a missing explicit file is.
func readConfigFile(v *viper.Viper, path string) error {
	explicit := path != ""
	if !explicit {
		path = os.Getenv(envPrefix + "_CONFIG_FILE")
		explicit = path != ""
	}

	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".sunbeam")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// decode unmarshals the merged settings in v and validates them.
func decode(v *viper.Viper) (Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// writeYAML prints cfg the way it would be written in a config file.
func writeYAML(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
