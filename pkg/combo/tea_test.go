package combo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeaKey(t *testing.T) {
	t.Run("converts supported combinations", func(st *testing.T) {
		tests := map[string]string{
			"q":             "q",
			"Q":             "Q",
			"?":             "?",
			"space":         " ",
			"ctrl-q":        "ctrl+q",
			"alt-m":         "alt+m",
			"alt-ctrl-q":    "alt+ctrl+q",
			"alt-A":         "alt+A",
			"enter":         "enter",
			"esc":           "esc",
			"backtab":       "shift+tab",
			"pageup":        "pgup",
			"ctrl-pagedown": "ctrl+pgdown",
			"shift-up":      "shift+up",
			"ctrl-shift-up": "ctrl+shift+up",
			"f12":           "f12",
			"del":           "delete",
		}

		for input, expected := range tests {
			name, ok := mustParse(st, input).TeaKey()

			assert.True(st, ok, input)
			assert.Equal(st, expected, name, input)
		}
	})

	t.Run("rejects unsupported combinations", func(st *testing.T) {
		for _, input := range []string{
			"super-a",
			"ctrl-1",
			"ctrl-shift-a",
			"shift-1",
			"f21",
			"shift-f1",
			"ctrl-enter",
			"shift-pageup",
			"ctrl-backtab",
		} {
			_, ok := mustParse(st, input).TeaKey()

			assert.False(st, ok, input)
		}
	})
}
