package event_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/robgonnella/keycombo/internal/event"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/robgonnella/keycombo/pkg/combo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, listener chan event.Event) event.Event {
	select {
	case evt := <-listener:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return event.Event{}
	}
}

func compile(t *testing.T, bindings map[string][]string) *keymap.Bindings {
	b, err := keymap.Compile(&keymap.Keymap{Name: "test", Bindings: bindings})

	require.NoError(t, err)

	return b
}

func TestEventManager(t *testing.T) {
	t.Run("registers event listener and sends event", func(st *testing.T) {
		eventManager := event.NewEventManager()

		listener := make(chan event.Event)

		eventManager.RegisterListener("test-event", listener)

		eventManager.Send(event.Event{
			Type:    "a-different-type",
			Payload: struct{}{},
		})

		eventManager.Send(event.Event{
			Type:    "test-event",
			Payload: true,
		})

		result := receive(st, listener)

		assert.Equal(st, event.EventType("test-event"), result.Type)
		assert.Equal(st, true, result.Payload)
	})

	t.Run("removes event listener", func(st *testing.T) {
		eventManager := event.NewEventManager()

		listener := make(chan event.Event)

		id := eventManager.RegisterListener("test-event", listener)

		assert.Equal(st, id, eventManager.RemoveListener(id))
		assert.Equal(st, 0, eventManager.RemoveListener(id))
	})

	t.Run("reports error event", func(st *testing.T) {
		eventManager := event.NewEventManager()

		listener := make(chan event.Event)

		eventManager.RegisterListener(event.ErrorEventType, listener)

		testErr := errors.New("test error")

		eventManager.ReportError(testErr)

		result := receive(st, listener)

		assert.Equal(st, event.ErrorEventType, result.Type)
		assert.Equal(st, testErr, result.Payload)
	})

	t.Run("announces new bindings", func(st *testing.T) {
		eventManager := event.NewEventManager()

		listener := make(chan event.Event)

		eventManager.RegisterListener(event.BindingsEventType, listener)

		bindings := compile(st, map[string][]string{"quit": {"q"}})

		eventManager.SetBindings(bindings)

		result := receive(st, listener)

		assert.Equal(st, bindings, result.Payload)
	})

	t.Run("dispatches key events to bound actions", func(st *testing.T) {
		eventManager := event.NewEventManager()

		quit := make(chan event.Event)
		save := make(chan event.Event)

		eventManager.RegisterListener("quit", quit)
		eventManager.RegisterListener("save", save)

		eventManager.SetBindings(compile(st, map[string][]string{
			"quit": {"ctrl-q", "esc"},
			"save": {"ctrl-s"},
		}))

		ok := eventManager.Dispatch(tcell.NewEventKey(tcell.KeyCtrlQ, 'q', tcell.ModCtrl))

		assert.True(st, ok)

		result := receive(st, quit)

		assert.Equal(st, event.EventType("quit"), result.Type)
		assert.Equal(st, combo.MustParse("ctrl-q"), result.Payload)

		ok = eventManager.Dispatch(combo.MustParse("ctrl-s").Event())

		assert.True(st, ok)

		result = receive(st, save)

		assert.Equal(st, combo.MustParse("ctrl-s"), result.Payload)
	})

	t.Run("dispatches to every action sharing a key", func(st *testing.T) {
		eventManager := event.NewEventManager()

		closing := make(chan event.Event)
		quit := make(chan event.Event)

		eventManager.RegisterListener("close", closing)
		eventManager.RegisterListener("quit", quit)

		eventManager.SetBindings(compile(st, map[string][]string{
			"close": {"esc"},
			"quit":  {"escape"},
		}))

		assert.True(st, eventManager.Dispatch(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))

		assert.Equal(st, event.EventType("close"), receive(st, closing).Type)
		assert.Equal(st, event.EventType("quit"), receive(st, quit).Type)
	})

	t.Run("does not dispatch unbound keys", func(st *testing.T) {
		eventManager := event.NewEventManager()

		ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)

		assert.False(st, eventManager.Dispatch(ev))

		eventManager.SetBindings(compile(st, map[string][]string{"quit": {"q"}}))

		assert.False(st, eventManager.Dispatch(ev))
		assert.False(st, eventManager.Dispatch(tcell.NewEventKey(tcell.KeyF64, 0, tcell.ModNone)))
	})
}
