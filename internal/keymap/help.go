package keymap

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"
	"github.com/robgonnella/keycombo/pkg/combo"
)

// KeyBindings returns a bubbles key.Binding per action, sorted by action.
// Keys bubbletea cannot report are left out of the binding's keys but
// still appear in its help text, rendered with format.
func (b *Bindings) KeyBindings(format combo.FormatConfig) []key.Binding {
	bindings := []key.Binding{}

	for _, action := range b.Actions() {
		keys := []string{}
		labels := []string{}

		for _, k := range b.byAction[action] {
			labels = append(labels, format.Format(k))

			if name, ok := k.TeaKey(); ok {
				keys = append(keys, name)
			}
		}

		bindings = append(bindings, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(labels, "/"), action),
		))
	}

	return bindings
}

// HelpLines renders one line per binding with the action names padded to
// a common display width
func HelpLines(bindings []key.Binding) []string {
	width := 0

	for _, kb := range bindings {
		if w := runewidth.StringWidth(kb.Help().Desc); w > width {
			width = w
		}
	}

	lines := make([]string, 0, len(bindings))

	for _, kb := range bindings {
		h := kb.Help()
		lines = append(lines, runewidth.FillRight(h.Desc, width)+"  "+h.Key)
	}

	return lines
}
