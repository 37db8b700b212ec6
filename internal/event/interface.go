package event

import (
	"github.com/gdamore/tcell/v2"
	"github.com/robgonnella/keycombo/internal/keymap"
)

// Manager routes events to registered listeners
type Manager interface {
	RegisterListener(eventType EventType, listener chan Event) int
	RemoveListener(id int) int
	SetBindings(bindings *keymap.Bindings)
	Dispatch(ev *tcell.EventKey) bool
	Send(event Event)
	ReportError(err error)
}
