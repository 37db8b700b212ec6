package combo_test

import (
	"errors"
	"testing"

	"github.com/robgonnella/keycombo/pkg/combo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) combo.KeyCombination {
	t.Helper()

	k, err := combo.Parse(input)

	require.NoError(t, err, "failed to parse %q", input)

	return k
}

func TestParse(t *testing.T) {
	t.Run("parses named keys case-insensitively", func(st *testing.T) {
		tests := []struct {
			input string
			key   combo.Key
		}{
			{"left", combo.KeyLeft},
			{"RIGHT", combo.KeyRight},
			{"Home", combo.KeyHome},
			{"enter", combo.KeyEnter},
			{"Return", combo.KeyEnter},
			{"esc", combo.KeyEscape},
			{"Escape", combo.KeyEscape},
			{"tab", combo.KeyTab},
			{"bAcKsPaCe", combo.KeyBackspace},
			{"del", combo.KeyDelete},
			{"Delete", combo.KeyDelete},
			{"ins", combo.KeyInsert},
			{"insert", combo.KeyInsert},
			{"pgup", combo.KeyPageUp},
			{"PageDown", combo.KeyPageDown},
			{"null", combo.KeyNull},
			{"pause", combo.KeyPause},
		}

		for _, tt := range tests {
			k := mustParse(st, tt.input)

			assert.Equal(st, combo.Named(tt.key), k.Code, tt.input)
			assert.Equal(st, combo.ModNone, k.Modifiers, tt.input)
		}
	})

	t.Run("backtab always carries shift", func(st *testing.T) {
		k := mustParse(st, "backtab")

		assert.Equal(st, combo.Named(combo.KeyBackTab), k.Code)
		assert.Equal(st, combo.ModShift, k.Modifiers)
	})

	t.Run("parses modifiers", func(st *testing.T) {
		k := mustParse(st, "alt-enter")

		assert.Equal(st, combo.New(combo.Named(combo.KeyEnter), combo.ModAlt), k)

		k = mustParse(st, "ctrl-q")

		assert.Equal(st, combo.New(combo.Char('q'), combo.ModCtrl), k)

		k = mustParse(st, "Control-Option-Cmd-x")

		assert.Equal(
			st,
			combo.New(combo.Char('x'), combo.ModCtrl|combo.ModAlt|combo.ModSuper),
			k,
		)
	})

	t.Run("uppercase letters imply shift", func(st *testing.T) {
		expected := combo.KeyCombination{Code: combo.Char('a'), Modifiers: combo.ModShift}

		assert.Equal(st, expected, mustParse(st, "A"))
		assert.Equal(st, expected, mustParse(st, "shift-a"))
		assert.Equal(st, expected, mustParse(st, "Shift-A"))
		assert.Equal(st, expected, mustParse(st, "shift-shift-A"))
		assert.NotEqual(st, mustParse(st, "a"), mustParse(st, "A"))

		assert.Equal(
			st,
			combo.KeyCombination{Code: combo.Char('q'), Modifiers: combo.ModCtrl | combo.ModShift},
			mustParse(st, "ctrl-shift-Q"),
		)
	})

	t.Run("separators are equivalent", func(st *testing.T) {
		expected := mustParse(st, "ctrl-alt-a")

		assert.Equal(st, expected, mustParse(st, "ctrl+alt+a"))
		assert.Equal(st, expected, mustParse(st, "ctrl+alt-a"))
		assert.Equal(st, expected, mustParse(st, "ctrl--alt++a"))
	})

	t.Run("modifier order does not matter", func(st *testing.T) {
		assert.Equal(st, mustParse(st, "ctrl-alt-a"), mustParse(st, "alt-ctrl-a"))
		assert.Equal(st, mustParse(st, "shift-alt-2"), mustParse(st, "ALT-SHIFT-2"))
	})

	t.Run("parses function keys", func(st *testing.T) {
		k := mustParse(st, "shift-F6")

		assert.Equal(st, combo.Function(6), k.Code)
		assert.Equal(st, combo.ModShift, k.Modifiers)

		assert.Equal(st, combo.Function(1), mustParse(st, "f1").Code)
		assert.Equal(st, combo.Function(24), mustParse(st, "F24").Code)
		assert.Equal(st, combo.ModNone, mustParse(st, "F10").Modifiers)
	})

	t.Run("single letter f is a character", func(st *testing.T) {
		assert.Equal(st, combo.New(combo.Char('f'), combo.ModNone), mustParse(st, "f"))
		assert.Equal(st, combo.New(combo.Char('f'), combo.ModShift), mustParse(st, "F"))
	})

	t.Run("parses separator characters as keys", func(st *testing.T) {
		minus := combo.Char('-')
		plus := combo.Char('+')

		assert.Equal(st, combo.New(minus, combo.ModNone), mustParse(st, "-"))
		assert.Equal(st, combo.New(plus, combo.ModNone), mustParse(st, "+"))
		assert.Equal(st, combo.New(minus, combo.ModNone), mustParse(st, "Hyphen"))
		assert.Equal(st, combo.New(minus, combo.ModNone), mustParse(st, "minus"))
		assert.Equal(st, combo.New(minus, combo.ModAlt), mustParse(st, "alt--"))
		assert.Equal(st, combo.New(minus, combo.ModAlt), mustParse(st, "alt-hyphen"))
		assert.Equal(st, combo.New(minus, combo.ModCtrl), mustParse(st, "ctrl+-"))
		assert.Equal(st, combo.New(plus, combo.ModCtrl), mustParse(st, "ctrl++"))
		assert.Equal(st, combo.New(plus, combo.ModCtrl), mustParse(st, "ctrl-plus"))
		assert.Equal(
			st,
			combo.New(minus, combo.ModCtrl|combo.ModShift|combo.ModAlt),
			mustParse(st, "ctrl-shift-alt--"),
		)
	})

	t.Run("parses characters", func(st *testing.T) {
		assert.Equal(st, combo.Char(' '), mustParse(st, "ctrl-Shift-alt-space").Code)
		assert.Equal(st, combo.Char('0'), mustParse(st, "0").Code)
		assert.Equal(st, combo.Char(']'), mustParse(st, "alt-]").Code)
		assert.Equal(st, combo.Char('{'), mustParse(st, "ctrl-{").Code)
		assert.Equal(st, combo.Char('ඞ'), mustParse(st, "ඞ").Code)
		assert.Equal(st, combo.Char('é'), mustParse(st, "alt-é").Code)
	})

	t.Run("trims surrounding whitespace", func(st *testing.T) {
		assert.Equal(st, mustParse(st, "ctrl-c"), mustParse(st, "  ctrl-c\t\n"))
	})
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
		token string
		pos   int
	}{
		{"empty", "", combo.ErrEmpty, "", 0},
		{"blank", "   ", combo.ErrEmpty, "", 0},
		{"unknown modifier", "foo-a", combo.ErrUnknownModifier, "foo", 0},
		{"unknown middle modifier", "ctrl-foo-a", combo.ErrUnknownModifier, "foo", 5},
		{"dangling separator", "ctrl-", combo.ErrDanglingSeparator, "-", 4},
		{"dangling plus", "ctrl+alt+", combo.ErrDanglingSeparator, "+", 8},
		{"leading separator", "-a", combo.ErrDanglingSeparator, "-", 0},
		{"double separator", "--", combo.ErrDanglingSeparator, "-", 0},
		{"function key too high", "F99", combo.ErrFunctionKeyRange, "F99", 0},
		{"function key zero", "ctrl-f0", combo.ErrFunctionKeyRange, "f0", 5},
		{"function key overflow", "F99999999999999999999", combo.ErrFunctionKeyRange, "F99999999999999999999", 0},
		{"unknown key", "ctrl-foo", combo.ErrUnknownKey, "foo", 5},
		{"internal whitespace", "ctrl a", combo.ErrUnknownKey, "ctrl a", 0},
		{"whitespace around separator", "ctrl - a", combo.ErrUnknownModifier, "ctrl ", 0},
		{"position in untrimmed input", "  alt-nope", combo.ErrUnknownKey, "nope", 6},
		{"control character", "\x01", combo.ErrUnknownKey, "\x01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(st *testing.T) {
			k, err := combo.Parse(tt.input)

			assert.Error(st, err)
			assert.Equal(st, combo.KeyCombination{}, k)
			assert.True(st, errors.Is(err, tt.err), "expected %v, got %v", tt.err, err)

			var parseErr *combo.ParseError

			require.True(st, errors.As(err, &parseErr))
			assert.Equal(st, tt.input, parseErr.Input)
			assert.Equal(st, tt.token, parseErr.Token)
			assert.Equal(st, tt.pos, parseErr.Pos)
		})
	}

	t.Run("error message identifies the token", func(st *testing.T) {
		_, err := combo.Parse("ctrl-foo-a")

		assert.EqualError(
			st,
			err,
			`"ctrl-foo-a" can't be parsed as a key: unknown modifier "foo" at position 5`,
		)
	})
}

func TestMustParse(t *testing.T) {
	t.Run("returns parsed combination", func(st *testing.T) {
		assert.Equal(st, mustParse(st, "ctrl-c"), combo.MustParse("ctrl-c"))
	})

	t.Run("panics with the parse error", func(st *testing.T) {
		assert.PanicsWithValue(
			st,
			`"alt-nope" can't be parsed as a key: unknown key "nope" at position 4`,
			func() { combo.MustParse("alt-nope") },
		)
	})
}
