package combo

import "strings"

// Modifier is a set of modifier keys
type Modifier uint8

const (
	// ModNone indicates no modifiers
	ModNone Modifier = 0

	// ModShift indicates the Shift key
	ModShift Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS)
	ModAlt

	// ModSuper indicates the Super key (Cmd on macOS, Win on Windows)
	ModSuper
)

// modifierOrder is the canonical display order
var modifierOrder = []Modifier{ModShift, ModCtrl, ModAlt, ModSuper}

// Has returns true if m contains every modifier in mod
func (m Modifier) Has(mod Modifier) bool {
	return m&mod == mod
}

// With returns a new Modifier with mod added
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with mod removed
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String returns the modifiers in canonical order using the default labels,
// e.g. "Shift-Ctrl"
func (m Modifier) String() string {
	labels := DefaultFormat()

	parts := []string{}

	for _, mod := range modifierOrder {
		if m.Has(mod) {
			parts = append(parts, labels.label(mod))
		}
	}

	return strings.Join(parts, labels.separator)
}

// modifierNameMap maps lowercase modifier names to modifiers
var modifierNameMap = map[string]Modifier{
	"shift":   ModShift,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
	"super":   ModSuper,
	"meta":    ModSuper,
	"cmd":     ModSuper,
	"win":     ModSuper,
}

// ModifierFromName returns the modifier for a name (case-insensitive)
func ModifierFromName(name string) (Modifier, bool) {
	mod, ok := modifierNameMap[strings.ToLower(name)]
	return mod, ok
}
