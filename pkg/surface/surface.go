// Package surface models a text rendering component that can interpret rich text. Surfaces announce their creation
// and every text assignment on an event.Manager, which is where the rest of the program hooks in to change them.
package surface

import (
	"sync"

	"awesome-dragon.science/go/colourEnabler/pkg/event"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/tmp"
	"awesome-dragon.science/go/colourEnabler/pkg/format/transformer/tokeniser"
)

// Kind is the sort of surface, flat UI text or text placed in the world
type Kind int

// Surface kinds
const (
	UI Kind = iota
	World
)

func (k Kind) String() string {
	switch k {
	case UI:
		return "ui"
	case World:
		return "world"
	default:
		return "unknown"
	}
}

// Event names dispatched by surfaces
const (
	AwakeEventName   = "awake"
	SetTextEventName = "set_text"
)

// AwakeEvent is dispatched once a Surface has been created, handlers may change its settings
type AwakeEvent struct {
	event.BaseEvent
	Surface *Surface
}

// SetTextEvent is dispatched before text is stored on a Surface. Handlers may replace *Value, the result is what
// the surface stores
type SetTextEvent struct {
	event.BaseEvent
	Surface *Surface
	Value   *string
}

// Surface holds text for rendering. RichText decides whether markup in that text is interpreted or shown literally
type Surface struct {
	Kind     Kind
	RichText bool

	hooks *event.Manager
	mu    sync.RWMutex
	text  string
}

// New creates a Surface of the given kind and dispatches AwakeEvent on hooks. hooks may be nil
func New(kind Kind, hooks *event.Manager) *Surface {
	s := &Surface{Kind: kind, hooks: hooks}
	if hooks != nil {
		hooks.Dispatch(&AwakeEvent{BaseEvent: event.NewBaseEvent(AwakeEventName), Surface: s})
	}

	return s
}

// SetText stores text on the surface after giving every set_text hook a chance to change it
func (s *Surface) SetText(text string) {
	if s.hooks != nil {
		s.hooks.Dispatch(&SetTextEvent{BaseEvent: event.NewBaseEvent(SetTextEventName), Surface: s, Value: &text})
	}

	s.mu.Lock()
	s.text = text
	s.mu.Unlock()
}

// Text returns the text as stored, after hooks
func (s *Surface) Text() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.text
}

// Render converts the stored text to the output format of t. With RichText disabled, markup is passed through as
// literal text
func (s *Surface) Render(t transformer.Transformer) string {
	text := s.Text()
	if !s.RichText {
		return t.Transform(tokeniser.Escape(text))
	}

	return t.Transform(tmp.Transformer{}.MakeIntermediate(text))
}
