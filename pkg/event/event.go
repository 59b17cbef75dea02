package event

// Event is anything that can be dispatched on a Manager. The name of the event decides which handlers are called
type Event interface {
	Name() string
}

// BaseEvent is the simplest possible Event, implementations are expected to embed it
type BaseEvent struct {
	name string
}

// NewBaseEvent creates a BaseEvent with the given name
func NewBaseEvent(name string) BaseEvent {
	return BaseEvent{name: name}
}

// Name implements the Event interface
func (b BaseEvent) Name() string { return b.name }
