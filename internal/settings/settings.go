// Package settings holds player preferences: which panels are shown, an
// optional start level and the key bound to each action. Values live in a
// key/value store so the format can grow without migrations.
package settings

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// KV is the persistence boundary. The bool result reports whether the key
// was present.
type KV interface {
	ReadInt(key string) (int, bool, error)
	ReadString(key string) (string, bool, error)
	ReadBool(key string) (bool, bool, error)
	Write(key, value string) error
}

// Setting keys.
const (
	KeyShowGhost    = "display.ghost"
	KeyShowNext     = "display.next"
	KeyShowHold     = "display.hold"
	KeyShowControls = "display.controls"
	KeyStartLevel   = "game.start_level"
)

const keyBindingPrefix = "keys."

// bindingNames maps the stored action names to actions, in display order.
var bindingNames = []struct {
	name   string
	action core.Action
}{
	{"left", core.ActionLeft},
	{"right", core.ActionRight},
	{"down", core.ActionSoftDrop},
	{"rotate", core.ActionRotate},
	{"hold", core.ActionHold},
	{"hard_drop", core.ActionHardDrop},
	{"pause", core.ActionPause},
	{"restart", core.ActionRestart},
}

// reservedKeys always quit and cannot be rebound.
var reservedKeys = []string{"ctrl+c", "q"}

// ErrUnknownKey is returned for a setting name that does not exist.
var ErrUnknownKey = errors.New("settings: unknown key")

// Bindings maps each rebindable action to the key names that trigger it.
type Bindings map[core.Action][]string

// Settings are the player's preferences.
type Settings struct {
	ShowGhost    bool
	ShowNext     bool
	ShowHold     bool
	ShowControls bool
	StartLevel   int // 0 keeps the configured start level
	Keys         Bindings
}

// Defaults returns the out-of-the-box preferences.
func Defaults() Settings {
	return Settings{
		ShowGhost:    true,
		ShowNext:     true,
		ShowHold:     true,
		ShowControls: true,
		Keys: Bindings{
			core.ActionLeft:     {"left", "a"},
			core.ActionRight:    {"right", "d"},
			core.ActionSoftDrop: {"down", "s"},
			core.ActionRotate:   {"up", "w"},
			core.ActionHold:     {"h"},
			core.ActionHardDrop: {"space"},
			core.ActionPause:    {"esc", "p"},
			core.ActionRestart:  {"n"},
		},
	}
}

// Names lists every setting key in a stable order.
func Names() []string {
	names := []string{KeyShowGhost, KeyShowNext, KeyShowHold, KeyShowControls, KeyStartLevel}
	for _, b := range bindingNames {
		names = append(names, keyBindingPrefix+b.name)
	}
	return names
}

// Load reads stored preferences on top of the defaults.
func Load(kv KV) (Settings, error) {
	s := Defaults()

	for key, dst := range s.toggles() {
		v, ok, err := kv.ReadBool(key)
		if err != nil {
			return s, fmt.Errorf("settings: read %s: %w", key, err)
		}
		if ok {
			*dst = v
		}
	}

	level, ok, err := kv.ReadInt(KeyStartLevel)
	if err != nil {
		return s, fmt.Errorf("settings: read %s: %w", KeyStartLevel, err)
	}
	if ok {
		if err := s.Set(KeyStartLevel, strconv.Itoa(level)); err != nil {
			return s, err
		}
	}

	keys := maps.Clone(s.Keys)
	for _, b := range bindingNames {
		key := keyBindingPrefix + b.name
		v, ok, err := kv.ReadString(key)
		if err != nil {
			return s, fmt.Errorf("settings: read %s: %w", key, err)
		}
		if !ok {
			continue
		}
		parsed, err := parseKeyList(v)
		if err != nil {
			return s, fmt.Errorf("settings: %s: %w", key, err)
		}
		keys[b.action] = parsed
	}
	if err := checkBindings(keys); err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}
	s.Keys = keys
	return s, nil
}

// Save writes every preference.
func Save(kv KV, s Settings) error {
	for _, key := range Names() {
		v, err := s.Get(key)
		if err != nil {
			return err
		}
		if err := kv.Write(key, v); err != nil {
			return fmt.Errorf("settings: write %s: %w", key, err)
		}
	}
	return nil
}

// Get returns the stored text form of one setting.
func (s Settings) Get(key string) (string, error) {
	if dst, ok := s.toggles()[key]; ok {
		return strconv.FormatBool(*dst), nil
	}
	if key == KeyStartLevel {
		return strconv.Itoa(s.StartLevel), nil
	}
	if a, ok := bindingAction(key); ok {
		return strings.Join(s.Keys[a], ","), nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownKey, key)
}

// Set parses and validates one setting. On error s is unchanged.
func (s *Settings) Set(key, value string) error {
	if dst, ok := s.toggles()[key]; ok {
		v, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("settings: %s: %w", key, err)
		}
		*dst = v
		return nil
	}

	if key == KeyStartLevel {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("settings: %s: %w", key, err)
		}
		if n != 0 && (n < engine.MinLevel || n > engine.MaxLevel) {
			return fmt.Errorf("settings: %s: %d outside %d..%d (0 for default)", key, n, engine.MinLevel, engine.MaxLevel)
		}
		s.StartLevel = n
		return nil
	}

	if a, ok := bindingAction(key); ok {
		keys, err := parseKeyList(value)
		if err != nil {
			return fmt.Errorf("settings: %s: %w", key, err)
		}
		next := maps.Clone(s.Keys)
		next[a] = keys
		if err := checkBindings(next); err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		s.Keys = next
		return nil
	}

	return fmt.Errorf("%w %q", ErrUnknownKey, key)
}

// KeyFor returns the first key bound to a, for hints.
func (s Settings) KeyFor(a core.Action) string {
	if keys := s.Keys[a]; len(keys) > 0 {
		return keys[0]
	}
	return ""
}

func (s *Settings) toggles() map[string]*bool {
	return map[string]*bool{
		KeyShowGhost:    &s.ShowGhost,
		KeyShowNext:     &s.ShowNext,
		KeyShowHold:     &s.ShowHold,
		KeyShowControls: &s.ShowControls,
	}
}

func bindingAction(key string) (core.Action, bool) {
	name, ok := strings.CutPrefix(key, keyBindingPrefix)
	if !ok {
		return core.ActionNone, false
	}
	for _, b := range bindingNames {
		if b.name == name {
			return b.action, true
		}
	}
	return core.ActionNone, false
}

// checkBindings rejects a key bound to more than one action. Conflicts are
// reported against the later action in display order.
func checkBindings(b Bindings) error {
	owner := make(map[string]core.Action)
	for _, bn := range bindingNames {
		for _, k := range b[bn.action] {
			if other, ok := owner[k]; ok {
				return fmt.Errorf("%s%s: key %q is already bound to %s", keyBindingPrefix, bn.name, k, other)
			}
			owner[k] = bn.action
		}
	}
	return nil
}

// parseKeyList splits "left, a" into normalized key names.
func parseKeyList(value string) ([]string, error) {
	var keys []string
	for _, part := range strings.Split(value, ",") {
		k := strings.ToLower(strings.TrimSpace(part))
		if k == "" {
			continue
		}
		if slices.Contains(reservedKeys, k) {
			return nil, fmt.Errorf("key %q is reserved for quit", k)
		}
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil, errors.New("at least one key is required")
	}
	return keys, nil
}
