package event

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/robgonnella/keycombo/internal/keymap"
	"github.com/robgonnella/keycombo/internal/logger"
	"github.com/robgonnella/keycombo/pkg/combo"
)

var _ Manager = (*EventManager)(nil)

type listener struct {
	eventType EventType
	ch        chan Event
}

// EventManager routes key events to listeners registered for the actions
// bound to them
type EventManager struct {
	nextID    int
	listeners map[int]listener
	bindings  *keymap.Bindings
	log       logger.Logger
	mux       sync.Mutex
}

// NewEventManager returns a new instance of EventManager
func NewEventManager() *EventManager {
	return &EventManager{
		nextID:    1,
		listeners: map[int]listener{},
		log:       logger.New(),
		mux:       sync.Mutex{},
	}
}

// RegisterListener registers ch to receive events of eventType and returns
// an id for removal
func (m *EventManager) RegisterListener(eventType EventType, ch chan Event) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	id := m.nextID
	m.nextID++

	m.listeners[id] = listener{eventType: eventType, ch: ch}

	return id
}

// RemoveListener removes the listener with id. It returns the removed id,
// or 0 if no such listener exists.
func (m *EventManager) RemoveListener(id int) int {
	m.mux.Lock()
	defer m.mux.Unlock()

	if _, ok := m.listeners[id]; !ok {
		return 0
	}

	delete(m.listeners, id)

	return id
}

// SetBindings replaces the table used by Dispatch
func (m *EventManager) SetBindings(bindings *keymap.Bindings) {
	m.mux.Lock()
	m.bindings = bindings
	m.mux.Unlock()

	m.Send(Event{Type: BindingsEventType, Payload: bindings})
}

// Dispatch sends an event for every action bound to the key pressed in ev.
// The payload is the pressed combo.KeyCombination. It returns false if no
// action is bound.
func (m *EventManager) Dispatch(ev *tcell.EventKey) bool {
	m.mux.Lock()
	bindings := m.bindings
	m.mux.Unlock()

	if bindings == nil {
		return false
	}

	k := combo.FromEvent(ev)

	if !k.Valid() {
		m.log.Debug().Str("event", ev.Name()).Msg("ignoring unsupported key event")
		return false
	}

	actions := bindings.Lookup(k)

	if len(actions) == 0 {
		return false
	}

	for _, action := range actions {
		m.log.Debug().Str("key", k.String()).Str("action", action).Msg("dispatching")
		m.Send(Event{Type: EventType(action), Payload: k})
	}

	return true
}

// Send delivers evt to every listener registered for its type. Delivery
// happens in the background so a slow listener never blocks the sender.
func (m *EventManager) Send(evt Event) {
	m.mux.Lock()
	defer m.mux.Unlock()

	for _, l := range m.listeners {
		if l.eventType != evt.Type {
			continue
		}

		go func(ch chan Event) {
			ch <- evt
		}(l.ch)
	}
}

// ReportError sends an ErrorEventType event carrying err
func (m *EventManager) ReportError(err error) {
	m.Send(Event{Type: ErrorEventType, Payload: err})
}
