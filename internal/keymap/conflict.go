package keymap

import (
	"fmt"
	"sort"
	"strings"

	"github.com/robgonnella/keycombo/pkg/combo"
)

// Conflict is a key combination bound to more than one action
type Conflict struct {
	Key     combo.KeyCombination
	Actions []string
}

// Message describes the conflict using format to render the key
func (c Conflict) Message(format combo.FormatConfig) string {
	return fmt.Sprintf(
		"keybinding conflict: %s (%s)",
		format.Format(c.Key),
		strings.Join(c.Actions, ", "),
	)
}

// DetectConflicts returns every combination bound to several actions.
// Combinations are compared in canonical form, so "A" and "shift-a"
// conflict. Results are sorted by rendered key then actions.
func DetectConflicts(b *Bindings) []Conflict {
	conflicts := []Conflict{}

	for k, actions := range b.byKey {
		if len(actions) < 2 {
			continue
		}

		sorted := append([]string{}, actions...)

		sort.Strings(sorted)

		conflicts = append(conflicts, Conflict{Key: k, Actions: sorted})
	}

	sort.Slice(conflicts, func(i, j int) bool {
		ki, kj := conflicts[i].Key.String(), conflicts[j].Key.String()

		if ki != kj {
			return ki < kj
		}

		return strings.Join(conflicts[i].Actions, ",") < strings.Join(conflicts[j].Actions, ",")
	})

	return conflicts
}
