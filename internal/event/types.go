package event

// EventType identifies the kind of event. Dispatched key presses use the
// bound action name as their type.
type EventType string

const (
	// ErrorEventType is sent by ReportError with the error as payload
	ErrorEventType EventType = "error"
	// BindingsEventType is sent by SetBindings with the new bindings as
	// payload
	BindingsEventType EventType = "bindings"
)

// Event data structure representing any event we may want to react to
type Event struct {
	Type    EventType
	Payload any
}
