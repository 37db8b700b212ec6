// Package combo parses and formats keyboard shortcuts.
//
// A KeyCombination is a key (a character, a function key or a named key
// such as Enter) plus a set of modifiers. Strings like "alt-enter",
// "shift-F6" or "ctrl+alt+a" are parsed with Parse and rendered back with a
// FormatConfig:
//
//	k, err := combo.Parse("ctrl-c")
//	...
//	combo.DefaultFormat().Format(k)                   // "Ctrl-c"
//	combo.DefaultFormat().WithControl("^").Format(k)  // "^c"
//
// Combinations convert to and from tcell key events with FromEvent and
// KeyCombination.Event, report their bubbletea key name with TeaKey, and
// implement encoding.TextUnmarshaler so they can be read straight from
// JSON, YAML or TOML configuration files.
package combo
