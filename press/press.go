// Package press tracks per-key pressed state with an idempotent press
// transition, so key-repeat and re-entrant pointer events never double-fire.
package press

import "time"

// FlashDuration is how long a key stays visually pressed when the input
// source provides no release signal (terminal key events have no key-up).
// A re-press inside the window is ignored and the pending release still
// fires at its original deadline, so the inconsistency is bounded by one
// flash period.
const FlashDuration = 150 * time.Millisecond

// State is the pressed/released map, keyed by note display name. Absent
// means released. It is owned by a single model and must only be mutated
// from its update loop.
type State struct {
	held map[string]time.Time
	now  func() time.Time
}

func New() *State {
	return &State{
		held: make(map[string]time.Time),
		now:  time.Now,
	}
}

// Press marks the key held and reports whether a new gesture began. A press
// while already held is ignored, so the caller fires its callback at most
// once per gesture.
func (s *State) Press(name string) bool {
	if _, ok := s.held[name]; ok {
		return false
	}
	s.held[name] = s.now()
	return true
}

// Release clears the key and returns how long it was held. Releasing a key
// that is not pressed is a no-op with ok false.
func (s *State) Release(name string) (held time.Duration, ok bool) {
	started, ok := s.held[name]
	if !ok {
		return 0, false
	}
	delete(s.held, name)
	return s.now().Sub(started), true
}

// Pressed reports whether the key is currently held.
func (s *State) Pressed(name string) bool {
	_, ok := s.held[name]
	return ok
}
