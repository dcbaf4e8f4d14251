package thicket

import (
	"fmt"
	"log/slog"
	"reflect"
)

// StateManager keeps the element states of one container instance. Keys are
// scoped to the container: two containers may both hold "Button_0".
//
// The manager counts frames locally. CleanupUnusedStates marks the end of a
// frame, so an entry survives as long as it is touched at least once every
// framesToKeep+1 cleanups.
type StateManager struct {
	states   map[string]*ElementState
	counters map[reflect.Type]int
	frame    uint64
	logger   *slog.Logger
}

// NewStateManager returns an empty state manager.
func NewStateManager() *StateManager {
	return &StateManager{
		states:   make(map[string]*ElementState),
		counters: make(map[reflect.Type]int),
	}
}

// GenerateKey synthesizes the next "{Kind}_{n}" key for el's concrete kind.
func (m *StateManager) GenerateKey(el Element) string {
	kind := reflect.TypeOf(el)
	n := m.counters[kind]
	m.counters[kind] = n + 1
	return fmt.Sprintf("%s_%d", typeName(kind), n)
}

// keyOf returns el's key, synthesizing and writing one back if it is empty.
func (m *StateManager) keyOf(el Keyed) string {
	key := el.GetKey()
	if key == "" {
		key = m.GenerateKey(el)
		el.SetKey(key)
	}
	return key
}

// GetOrCreateState returns the state for el, creating it on first use. A
// state created by a different concrete kind under the same key is discarded
// and rebuilt.
func (m *StateManager) GetOrCreateState(el Keyed) *ElementState {
	key := m.keyOf(el)
	kind := reflect.TypeOf(el)

	if st, ok := m.states[key]; ok {
		if st.ElementType == kind {
			st.lastUsedFrame = m.frame
			return st
		}
		if m.logger != nil {
			m.logger.Debug("rebuilding state for changed element kind",
				"key", key, "from", typeName(st.ElementType), "to", typeName(kind))
		}
	}

	st := newElementState(key, kind)
	if s, ok := el.(Stateful); ok {
		st.State = s.CreateState()
	}
	st.lastUsedFrame = m.frame
	m.states[key] = st
	return st
}

// UpdateState replaces the payload of el's state, creating the state if it
// does not exist yet.
func (m *StateManager) UpdateState(el Keyed, payload any) *ElementState {
	st := m.GetOrCreateState(el)
	st.State = payload
	st.normalize()
	return st
}

// RemoveState drops el's state. It is a no-op for unknown keys.
func (m *StateManager) RemoveState(el Keyed) {
	key := el.GetKey()
	if key == "" {
		return
	}
	delete(m.states, key)
}

// HasState reports whether a state created by el's concrete kind exists under
// el's key.
func (m *StateManager) HasState(el Keyed) bool {
	key := el.GetKey()
	if key == "" {
		return false
	}
	st, ok := m.states[key]
	return ok && st.ElementType == reflect.TypeOf(el)
}

// Lookup returns the state stored under key regardless of kind.
func (m *StateManager) Lookup(key string) (*ElementState, bool) {
	st, ok := m.states[key]
	return st, ok
}

// ResetCounters clears the per-kind ordinals used for key synthesis.
func (m *StateManager) ResetCounters() {
	clear(m.counters)
}

// CleanupUnusedStates evicts states not touched within the last framesToKeep
// frames, then starts a new frame. It returns the number of evicted states.
func (m *StateManager) CleanupUnusedStates(framesToKeep int) int {
	evicted := 0
	for key, st := range m.states {
		if m.frame-st.lastUsedFrame > uint64(max(framesToKeep, 0)) {
			delete(m.states, key)
			evicted++
		}
	}
	m.frame++
	return evicted
}

// Frame returns the manager's current frame number.
func (m *StateManager) Frame() uint64 { return m.frame }

// Len returns the number of stored states.
func (m *StateManager) Len() int { return len(m.states) }

// Keys returns the stored keys in no particular order.
func (m *StateManager) Keys() []string {
	keys := make([]string, 0, len(m.states))
	for k := range m.states {
		keys = append(keys, k)
	}
	return keys
}
