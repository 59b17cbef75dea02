// Package plugin hooks the richtext pipeline into surface events
package plugin

import (
	"awesome-dragon.science/go/colourEnabler/internal/version"
	"awesome-dragon.science/go/colourEnabler/pkg/event"
	"awesome-dragon.science/go/colourEnabler/pkg/log"
	"awesome-dragon.science/go/colourEnabler/pkg/richtext"
	"awesome-dragon.science/go/colourEnabler/pkg/surface"
)

// Plugin tracks the hooks added by Load so that they can be removed again
type Plugin struct {
	hooks *event.Manager
	log   *log.Logger
	ids   []int
}

// Load attaches ForceRichText and ReplaceTags to the surface events on hooks. forceRichText controls whether the
// awake hook is attached at all
func Load(hooks *event.Manager, logger *log.Logger, forceRichText bool) *Plugin {
	p := &Plugin{hooks: hooks, log: logger}

	if forceRichText {
		p.ids = append(p.ids, hooks.Attach(surface.AwakeEventName, p.ForceRichText, event.PriNorm))
	}

	p.ids = append(p.ids, hooks.Attach(surface.SetTextEventName, p.ReplaceTags, event.PriHighest))

	logger.Infof("%s loaded! (>color=RED>Word wraps only the word). Size tags are disabled for security.", version.String())

	return p
}

// IDs returns the handler IDs attached by Load
func (p *Plugin) IDs() []int {
	out := make([]int, len(p.ids))
	copy(out, p.ids)

	return out
}

// Unload detaches everything Load attached
func (p *Plugin) Unload() {
	for _, id := range p.ids {
		if !p.hooks.Detach(id) {
			p.log.Warnf("hook %d was already detached", id)
		}
	}

	p.ids = nil
	p.log.Infof("%s unloaded", version.Name)
}

// ForceRichText turns on rich text interpretation for every surface as it is created
func (p *Plugin) ForceRichText(e event.Event) {
	ev, ok := e.(*surface.AwakeEvent)
	if !ok || ev.Surface == nil {
		return
	}

	ev.Surface.RichText = true
	p.log.Tracef("forced rich text on new %s surface", ev.Surface.Kind)
}

// ReplaceTags rewrites text before it is stored on a surface
func (p *Plugin) ReplaceTags(e event.Event) {
	ev, ok := e.(*surface.SetTextEvent)
	if !ok {
		return
	}

	before := ""
	if ev.Value != nil {
		before = *ev.Value
	}

	richtext.ReplaceTags(ev.Value)

	if ev.Value != nil && *ev.Value != before {
		p.log.Tracef("rewrote %q to %q", before, *ev.Value)
	}
}
