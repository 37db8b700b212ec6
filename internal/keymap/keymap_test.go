package keymap_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/robgonnella/keycombo/internal/exception"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/robgonnella/keycombo/pkg/combo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	t.Run("compiles bindings", func(st *testing.T) {
		km := &keymap.Keymap{
			Name: "default",
			Bindings: map[string][]string{
				"quit":   {"ctrl-q", "esc"},
				"save":   {"ctrl-s"},
				"search": {"/", "ctrl-f"},
			},
		}

		b, err := keymap.Compile(km)

		require.NoError(st, err)
		assert.Equal(st, "default", b.Name())
		assert.Equal(st, 5, b.Len())
		assert.Equal(st, []string{"quit", "save", "search"}, b.Actions())
		assert.Equal(st, []string{"quit"}, b.Lookup(combo.MustParse("Ctrl+q")))
		assert.Equal(st, []string{"quit"}, b.Lookup(combo.MustParse("escape")))
		assert.Equal(st, []string{"search"}, b.Lookup(combo.MustParse("/")))
		assert.Empty(st, b.Lookup(combo.MustParse("ctrl-x")))
		assert.Equal(
			st,
			[]combo.KeyCombination{combo.MustParse("ctrl-q"), combo.MustParse("esc")},
			b.Keys("quit"),
		)
		assert.Empty(st, b.Keys("noop"))
	})

	t.Run("looks up tcell events", func(st *testing.T) {
		km := &keymap.Keymap{
			Name: "default",
			Bindings: map[string][]string{
				"quit": {"ctrl-q"},
				"up":   {"k", "up"},
			},
		}

		b, err := keymap.Compile(km)

		require.NoError(st, err)

		ev := tcell.NewEventKey(tcell.KeyCtrlQ, 'q', tcell.ModCtrl)
		assert.Equal(st, []string{"quit"}, b.LookupEvent(ev))

		ev = tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone)
		assert.Equal(st, []string{"up"}, b.LookupEvent(ev))

		ev = tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
		assert.Equal(st, []string{"up"}, b.LookupEvent(ev))
	})

	t.Run("ignores duplicate bindings within an action", func(st *testing.T) {
		km := &keymap.Keymap{
			Name: "dupes",
			Bindings: map[string][]string{
				"shout": {"A", "shift-a", "Shift+A"},
			},
		}

		b, err := keymap.Compile(km)

		require.NoError(st, err)
		assert.Equal(st, 1, b.Len())
		assert.Equal(st, []string{"shout"}, b.Lookup(combo.MustParse("shift-a")))
	})

	t.Run("returns lookups that cannot mutate bindings", func(st *testing.T) {
		km := &keymap.Keymap{
			Name:     "default",
			Bindings: map[string][]string{"quit": {"q"}},
		}

		b, err := keymap.Compile(km)

		require.NoError(st, err)

		actions := b.Lookup(combo.MustParse("q"))
		actions[0] = "changed"

		assert.Equal(st, []string{"quit"}, b.Lookup(combo.MustParse("q")))
	})

	t.Run("reports every invalid binding", func(st *testing.T) {
		km := &keymap.Keymap{
			Name: "broken",
			Bindings: map[string][]string{
				"quit":  {"ctrl-q"},
				"bogus": {"hyper-x"},
				"far":   {"f99"},
			},
		}

		b, err := keymap.Compile(km)

		assert.Nil(st, b)
		require.Error(st, err)
		assert.ErrorIs(st, err, exception.ErrInvalidKeymap)
		assert.ErrorIs(st, err, combo.ErrUnknownModifier)
		assert.ErrorIs(st, err, combo.ErrFunctionKeyRange)
		assert.Contains(st, err.Error(), "bogus")
		assert.Contains(st, err.Error(), "far")
	})

	t.Run("rejects empty action names", func(st *testing.T) {
		km := &keymap.Keymap{
			Name:     "empty",
			Bindings: map[string][]string{" ": {"q"}},
		}

		_, err := keymap.Compile(km)

		assert.ErrorIs(st, err, exception.ErrInvalidKeymap)
	})

	t.Run("rejects nil keymap", func(st *testing.T) {
		_, err := keymap.Compile(nil)

		assert.ErrorIs(st, err, exception.ErrInvalidKeymap)
	})
}
