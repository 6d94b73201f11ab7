package sunbeam

import (
	"errors"
	"fmt"
)

// KeyMap binds keys to directional moves. It is a value: the container
// copies it on construction.
type KeyMap []KeyBinding

// KeyBinding moves focus in Move when Key is pressed.
type KeyBinding struct {
	Key  Key
	Move Direction
}

// DefaultKeyMap binds the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		{Key: KeyArrowUp, Move: DirUp},
		{Key: KeyArrowDown, Move: DirDown},
		{Key: KeyArrowLeft, Move: DirLeft},
		{Key: KeyArrowRight, Move: DirRight},
	}
}

// Lookup returns the move bound to key. The first binding wins.
func (km KeyMap) Lookup(key Key) (Direction, bool) {
	for _, b := range km {
		if b.Key == key {
			return b.Move, true
		}
	}
	return 0, false
}

// Keys returns every key bound to dir.
func (km KeyMap) Keys(dir Direction) []Key {
	var keys []Key
	for _, b := range km {
		if b.Move == dir {
			keys = append(keys, b.Key)
		}
	}
	return keys
}

// KeyConfig is the serializable form of a KeyMap: one key per direction.
// An empty field keeps the arrow key for that direction.
type KeyConfig struct {
	Up    string `mapstructure:"up" yaml:"up"`
	Down  string `mapstructure:"down" yaml:"down"`
	Left  string `mapstructure:"left" yaml:"left"`
	Right string `mapstructure:"right" yaml:"right"`
}

// DefaultKeyConfig returns the arrow key bindings.
func DefaultKeyConfig() KeyConfig {
	return KeyConfig{
		Up:    string(KeyArrowUp),
		Down:  string(KeyArrowDown),
		Left:  string(KeyArrowLeft),
		Right: string(KeyArrowRight),
	}
}

// KeyMap builds the KeyMap, rejecting a key bound to two directions.
func (c KeyConfig) KeyMap() (KeyMap, error) {
	entries := []struct {
		raw      string
		dir      Direction
		fallback Key
	}{
		{c.Up, DirUp, KeyArrowUp},
		{c.Down, DirDown, KeyArrowDown},
		{c.Left, DirLeft, KeyArrowLeft},
		{c.Right, DirRight, KeyArrowRight},
	}

	km := make(KeyMap, 0, len(entries))
	seen := make(map[Key]Direction, len(entries))
	var errs []error
	for _, e := range entries {
		key := e.fallback
		if e.raw != "" {
			key = ParseKey(e.raw)
		}
		if prev, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%w: key %s bound to both %s and %s", ErrInvalidConfig, key, prev, e.dir))
			continue
		}
		seen[key] = e.dir
		km = append(km, KeyBinding{Key: key, Move: e.dir})
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return km, nil
}
