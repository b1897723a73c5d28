package domevent

import "github.com/lukehoban/contentcore/dom"

// ListenerHandle identifies one registered listener, returned by
// AddEventListener so RemoveEventListener doesn't need a comparable
// function value (Go listeners generally aren't comparable).
type ListenerHandle struct {
	node      *dom.Node
	eventType string
	id        uint64
}

type registration struct {
	id       uint64
	listener Listener
	capture  bool
}

// Registry holds event listeners registered against dom.Node pointers.
// Listeners live in the registry rather than on dom.Node itself, so the
// DOM tree stays free of event-plumbing fields and multiple independent
// registries (e.g. one per browsing context) can share one tree.
type Registry struct {
	listeners map[*dom.Node]map[string][]registration
	nextID    uint64
}

// NewRegistry creates an empty listener registry.
func NewRegistry() *Registry {
	return &Registry{listeners: make(map[*dom.Node]map[string][]registration)}
}

// AddEventListener registers listener for eventType on node. capture
// selects whether it fires during the capturing phase (true) or the
// bubbling phase (false); either way it also fires during the at-target
// phase when node is the dispatch target.
func (r *Registry) AddEventListener(node *dom.Node, eventType string, capture bool, listener Listener) ListenerHandle {
	r.nextID++
	id := r.nextID
	if r.listeners[node] == nil {
		r.listeners[node] = make(map[string][]registration)
	}
	r.listeners[node][eventType] = append(r.listeners[node][eventType], registration{id: id, listener: listener, capture: capture})
	return ListenerHandle{node: node, eventType: eventType, id: id}
}

// RemoveEventListener undoes a prior AddEventListener.
func (r *Registry) RemoveEventListener(h ListenerHandle) {
	regs := r.listeners[h.node][h.eventType]
	for i, reg := range regs {
		if reg.id == h.id {
			r.listeners[h.node][h.eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// Dispatch runs the capture -> target -> bubble algorithm for event
// against target, and returns whether the event's default action should
// proceed (false if some listener called PreventDefault).
func (r *Registry) Dispatch(target *dom.Node, event *Event) bool {
	event.Target = target
	path := ancestorPath(target) // path[0] = immediate parent, ..., path[len-1] = root

	event.Phase = PhaseCapturing
	for i := len(path) - 1; i >= 0; i-- {
		if event.propagationStopped {
			break
		}
		r.invoke(path[i], event, func(capture bool) bool { return capture })
	}

	if !event.propagationStopped {
		event.Phase = PhaseAtTarget
		r.invoke(target, event, func(bool) bool { return true })
	}

	if event.Bubbles && !event.propagationStopped {
		event.Phase = PhaseBubbling
		for _, ancestor := range path {
			if event.propagationStopped {
				break
			}
			r.invoke(ancestor, event, func(capture bool) bool { return !capture })
		}
	}

	event.Phase = PhaseNone
	event.CurrentTarget = nil
	return !event.defaultPrevented
}

// invoke runs node's listeners for event.Type that match, in
// registration order, stopping early on stopImmediatePropagation. It
// snapshots the slice first so a listener adding/removing a listener
// mid-dispatch doesn't corrupt this pass.
func (r *Registry) invoke(node *dom.Node, event *Event, match func(capture bool) bool) {
	regs := r.listeners[node][event.Type]
	if len(regs) == 0 {
		return
	}
	event.CurrentTarget = node
	snapshot := append([]registration(nil), regs...)
	for _, reg := range snapshot {
		if !match(reg.capture) {
			continue
		}
		reg.listener(event)
		if event.immediatePropagationStopped {
			return
		}
	}
}

func ancestorPath(node *dom.Node) []*dom.Node {
	var path []*dom.Node
	for n := node.Parent; n != nil; n = n.Parent {
		path = append(path, n)
	}
	return path
}
