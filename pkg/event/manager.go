package event

import (
	"sort"
	"sync"
)

// This is a reimplementation of eventmgr found at github.com/goshuirc/eventmgr with an ID system added.
// The original idea is theirs.

// Priority levels
const (
	PriHighest = 16
	PriHigh    = 32
	PriNorm    = 48
	PriLow     = 64
	PriLowest  = 80
)

// HandlerFunc represents an event handler callback
type HandlerFunc func(Event)

// Handler represents an event handler
type Handler struct {
	Func     HandlerFunc // The callback that this Handler refers to
	Priority int         // The priority of this callback, lower is higher
	ID       int         // The ID of this callback
}

// HandlerList is a slice of handlers, kept sorted by priority
type HandlerList []Handler

// Map is a map of event name to HandlerList
type Map map[string]HandlerList

// Manager is an event bus. It allows you to hook callbacks onto string based event names, and fire them later. Use
// of Manager objects from multiple goroutines is permitted. The zero value is ready for use
type Manager struct {
	events Map
	m      sync.RWMutex
	curID  int
}

// HasEvent returns whether or not the given string exists as an event on this Manager
func (m *Manager) HasEvent(name string) bool {
	m.m.RLock()
	defer m.m.RUnlock()

	return len(m.events[name]) > 0
}

// Attach adds an event and a callback to the Manager, the returned int is an ID for the attached callback, and can
// be used to detach a callback later. Callbacks with the same priority are called in the order they were attached
func (m *Manager) Attach(name string, f HandlerFunc, priority int) int {
	m.m.Lock()
	defer m.m.Unlock()

	if m.events == nil {
		m.events = make(Map)
	}

	m.curID++
	id := m.curID

	hl := append(m.events[name], Handler{Func: f, Priority: priority, ID: id})
	sort.SliceStable(hl, func(i, j int) bool { return hl[i].Priority < hl[j].Priority })
	m.events[name] = hl

	return id
}

// Detach removes a given ID from the event Manager. If the ID is not found, Detach returns false
func (m *Manager) Detach(id int) bool {
	m.m.Lock()
	defer m.m.Unlock()

	for name, hl := range m.events {
		for i, handler := range hl {
			if handler.ID != id {
				continue
			}

			// Copy rather than shift in place, Dispatch may be iterating over the old slice
			newList := make(HandlerList, 0, len(hl)-1)
			newList = append(newList, hl[:i]...)
			newList = append(newList, hl[i+1:]...)

			if len(newList) == 0 {
				delete(m.events, name)
			} else {
				m.events[name] = newList
			}

			return true
		}
	}

	return false
}

// Dispatch fires an event down the event bus under the name attached to the given event. If the name does not exist,
// it is silently ignored. Handlers are called synchronously, in priority order, on the calling goroutine
func (m *Manager) Dispatch(event Event) {
	m.m.RLock()
	toIterate := m.events[event.Name()]
	m.m.RUnlock()

	for _, h := range toIterate {
		if h.Func != nil {
			h.Func(event)
		}
	}
}
