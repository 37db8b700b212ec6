package keymap

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/robgonnella/keycombo/internal/exception"
	"github.com/robgonnella/keycombo/internal/util"
	"github.com/robgonnella/keycombo/pkg/combo"
)

// Keymap represents a named set of keybindings as written in a
// configuration file: each action maps to one or more key combinations
type Keymap struct {
	ID       string              `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`
	Name     string              `json:"name" yaml:"name" toml:"name"`
	Bindings map[string][]string `json:"bindings" yaml:"bindings" toml:"bindings"`
}

// Bindings is a compiled Keymap indexed by canonical key combination
type Bindings struct {
	name     string
	byKey    map[combo.KeyCombination][]string
	byAction map[string][]combo.KeyCombination
}

// Compile parses every binding in km. All invalid bindings are reported,
// joined into a single error wrapping exception.ErrInvalidKeymap.
func Compile(km *Keymap) (*Bindings, error) {
	if km == nil {
		return nil, fmt.Errorf("%w: keymap cannot be nil", exception.ErrInvalidKeymap)
	}

	b := &Bindings{
		name:     km.Name,
		byKey:    map[combo.KeyCombination][]string{},
		byAction: map[string][]combo.KeyCombination{},
	}

	errs := []error{}

	for _, action := range sortedKeys(km.Bindings) {
		if strings.TrimSpace(action) == "" {
			errs = append(errs, fmt.Errorf("%w: empty action name", exception.ErrInvalidKeymap))
			continue
		}

		for _, spec := range km.Bindings[action] {
			k, err := combo.Parse(spec)

			if err != nil {
				errs = append(errs, fmt.Errorf("%w: %s: %w", exception.ErrInvalidKeymap, action, err))
				continue
			}

			b.byKey[k] = util.AppendUnique(b.byKey[k], action)
			b.byAction[action] = util.AppendUnique(b.byAction[action], k)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return b, nil
}

// Name returns the name of the compiled keymap
func (b *Bindings) Name() string {
	return b.name
}

// Lookup returns the actions bound to k in alphabetical order
func (b *Bindings) Lookup(k combo.KeyCombination) []string {
	return append([]string{}, b.byKey[k]...)
}

// LookupEvent returns the actions bound to the key pressed in ev
func (b *Bindings) LookupEvent(ev *tcell.EventKey) []string {
	return b.Lookup(combo.FromEvent(ev))
}

// Keys returns the combinations bound to action in file order
func (b *Bindings) Keys(action string) []combo.KeyCombination {
	return append([]combo.KeyCombination{}, b.byAction[action]...)
}

// Actions returns every action with at least one binding, sorted
func (b *Bindings) Actions() []string {
	return sortedKeys(b.byAction)
}

// Len returns the number of distinct bound key combinations
func (b *Bindings) Len() int {
	return len(b.byKey)
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))

	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
