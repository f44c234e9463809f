package state

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrDuplicateState is returned when two states share an id.
var ErrDuplicateState = errors.New("duplicate state")

// UnknownStateError reports a transition or change toward a state the
// handler was not built with. It is an authoring error, never retried.
type UnknownStateError struct {
	From ID
	To   ID
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %s (from %s)", e.To, e.From)
}

// Listener is notified after every state change.
type Listener func(from, to ID)

// Handler owns the current state of one entity and performs its transitions.
type Handler struct {
	name      string
	states    map[ID]State
	current   State
	previous  State
	listeners []Listener
	logger    *log.Logger
}

// NewHandler builds a handler over a fixed set of states. Every transition
// target must be one of them (or Previous).
func NewHandler(name string, logger *log.Logger, states ...State) (*Handler, error) {
	if logger == nil {
		logger = log.Default()
	}
	h := &Handler{
		name:   name,
		states: make(map[ID]State, len(states)),
		logger: logger,
	}
	for _, s := range states {
		if _, exists := h.states[s.ID()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateState, s.ID())
		}
		h.states[s.ID()] = s
	}
	for _, s := range states {
		for _, t := range s.Transitions() {
			if t.Target == Previous {
				continue
			}
			if _, ok := h.states[t.Target]; !ok {
				return nil, &UnknownStateError{From: s.ID(), To: t.Target}
			}
		}
	}
	return h, nil
}

// Start enters the initial state.
func (h *Handler) Start(id ID) error {
	s, ok := h.states[id]
	if !ok {
		return &UnknownStateError{From: Previous, To: id}
	}
	h.current = s
	h.previous = nil
	s.Enter()
	return nil
}

// Update runs the current state's per-tick behaviour.
func (h *Handler) Update(extrp float64) {
	h.current.Update(extrp)
}

// PostUpdate evaluates the current state's transitions in registration
// order and performs the first one whose guard holds. It reports whether a
// transition happened.
func (h *Handler) PostUpdate() bool {
	for _, t := range h.current.Transitions() {
		if t.Guard() {
			h.Change(t.Target)
			return true
		}
	}
	return false
}

// Change exits the current state and enters the target. An unknown target
// panics with an *UnknownStateError.
func (h *Handler) Change(id ID) {
	from := h.current
	var next State
	if id == Previous {
		next = h.previous
		if next == nil {
			return
		}
	} else {
		s, ok := h.states[id]
		if !ok {
			panic(&UnknownStateError{From: h.currentID(), To: id})
		}
		next = s
	}

	if from != nil {
		from.Exit()
	}
	h.previous = from
	h.current = next
	next.Enter()

	fromID := Previous
	if from != nil {
		fromID = from.ID()
	}
	h.logger.Debug("state changed", "entity", h.name, "from", fromID, "to", next.ID())
	for _, l := range h.listeners {
		l(fromID, next.ID())
	}
}

// OnChange registers a listener called after each change.
func (h *Handler) OnChange(l Listener) {
	h.listeners = append(h.listeners, l)
}

// Current returns the active state.
func (h *Handler) Current() State { return h.current }

// IsState reports whether the active state has the given id.
func (h *Handler) IsState(id ID) bool {
	return h.current != nil && h.current.ID() == id
}

// PreviousID returns the id of the state active before the current one.
func (h *Handler) PreviousID() (ID, bool) {
	if h.previous == nil {
		return Previous, false
	}
	return h.previous.ID(), true
}

// State returns a registered state.
func (h *Handler) State(id ID) (State, bool) {
	s, ok := h.states[id]
	return s, ok
}

func (h *Handler) currentID() ID {
	if h.current == nil {
		return Previous
	}
	return h.current.ID()
}
