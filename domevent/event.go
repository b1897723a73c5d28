// Package domevent implements DOM-style event dispatch over a dom.Node
// tree: capture phase root-to-target, the at-target phase, then the
// bubble phase target-to-root, with stopPropagation,
// stopImmediatePropagation, and preventDefault semantics.
package domevent

import "github.com/lukehoban/contentcore/dom"

// Phase identifies which part of dispatch is currently running when a
// listener is invoked.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseCapturing
	PhaseAtTarget
	PhaseBubbling
)

func (p Phase) String() string {
	switch p {
	case PhaseCapturing:
		return "capturing"
	case PhaseAtTarget:
		return "at-target"
	case PhaseBubbling:
		return "bubbling"
	default:
		return "none"
	}
}

// Event is a single dispatched occurrence. Target is fixed for the
// lifetime of a dispatch; CurrentTarget changes as dispatch walks the
// ancestor chain, matching the distinction DOM listeners rely on to tell
// "the node the event happened to" from "the node this listener is
// attached to".
type Event struct {
	Type          string
	Target        *dom.Node
	CurrentTarget *dom.Node
	Phase         Phase
	Bubbles       bool
	Cancelable    bool

	// Detail carries event-specific payload (e.g. click coordinates, key
	// codes) without Event needing a field per event type.
	Detail any

	propagationStopped          bool
	immediatePropagationStopped bool
	defaultPrevented            bool
}

// New creates an event ready to dispatch.
func New(eventType string, bubbles, cancelable bool) *Event {
	return &Event{Type: eventType, Bubbles: bubbles, Cancelable: cancelable}
}

// StopPropagation prevents the event from reaching any node beyond the
// current one, but lets remaining listeners on the current node still run.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// StopImmediatePropagation stops both propagation to further nodes and
// any remaining listeners on the current node.
func (e *Event) StopImmediatePropagation() {
	e.propagationStopped = true
	e.immediatePropagationStopped = true
}

// PreventDefault marks the event's default action as canceled. It has no
// effect if the event was constructed with cancelable=false.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PropagationStopped reports whether StopPropagation or
// StopImmediatePropagation was called during this dispatch.
func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}

// Listener handles a dispatched Event.
type Listener func(*Event)
