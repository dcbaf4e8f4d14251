package thicket

import (
	"fmt"
	"log/slog"
	"reflect"
)

// StateManagerStorage is one node of the state tree: the StateManager of a
// container instance plus the storages of the containers nested in it.
// Children that stop being visited are dropped by ResetAndCleanupUnusedState
// together with their whole subtree.
type StateManagerStorage struct {
	state    *StateManager
	children map[string]*childStorage
	counters map[reflect.Type]int
	logger   *slog.Logger
}

type childStorage struct {
	node     *StateManagerStorage
	lastUsed uint64
}

// NewStateManagerStorage returns an empty storage node.
func NewStateManagerStorage() *StateManagerStorage {
	return &StateManagerStorage{
		state:    NewStateManager(),
		children: make(map[string]*childStorage),
		counters: make(map[reflect.Type]int),
	}
}

func newLoggedStorage(logger *slog.Logger) *StateManagerStorage {
	s := NewStateManagerStorage()
	s.logger = logger
	s.state.logger = logger
	return s
}

// StateManager returns the node's state manager.
func (s *StateManagerStorage) StateManager() *StateManager { return s.state }

// GenerateChildKey synthesizes the next "{Kind}_{n}" key for a container
// nested directly in this node.
func (s *StateManagerStorage) GenerateChildKey(c Element) string {
	kind := reflect.TypeOf(c)
	n := s.counters[kind]
	s.counters[kind] = n + 1
	return fmt.Sprintf("%s_%d", typeName(kind), n)
}

// GetOrCreateChildStorage returns the child stored under key, creating it
// with factory on first use. A nil factory uses NewStateManagerStorage.
func (s *StateManagerStorage) GetOrCreateChildStorage(key string, factory func() *StateManagerStorage) *StateManagerStorage {
	if c, ok := s.children[key]; ok {
		c.lastUsed = s.state.frame
		return c.node
	}
	if factory == nil {
		factory = NewStateManagerStorage
	}
	c := &childStorage{node: factory(), lastUsed: s.state.frame}
	s.children[key] = c
	return c.node
}

// Child returns the child stored under key.
func (s *StateManagerStorage) Child(key string) (*StateManagerStorage, bool) {
	c, ok := s.children[key]
	if !ok {
		return nil, false
	}
	return c.node, true
}

// ChildCount returns the number of direct children.
func (s *StateManagerStorage) ChildCount() int { return len(s.children) }

// ResetAndCleanupUnusedState runs the end-of-pass sweep over this subtree:
// key counters are reset everywhere, children not visited within
// framesToKeep frames are dropped, and every state manager evicts its stale
// entries. It returns the number of evicted element states.
func (s *StateManagerStorage) ResetAndCleanupUnusedState(framesToKeep int) int {
	clear(s.counters)

	frame := s.state.frame
	evicted := 0
	for key, c := range s.children {
		if frame-c.lastUsed > uint64(max(framesToKeep, 0)) {
			n := c.node.countStates()
			delete(s.children, key)
			evicted += n
			if s.logger != nil {
				s.logger.Debug("dropping unused container state", "key", key, "states", n)
			}
			continue
		}
		evicted += c.node.ResetAndCleanupUnusedState(framesToKeep)
	}

	s.state.ResetCounters()
	evicted += s.state.CleanupUnusedStates(framesToKeep)
	return evicted
}

func (s *StateManagerStorage) countStates() int {
	n := s.state.Len()
	for _, c := range s.children {
		n += c.node.countStates()
	}
	return n
}

// StateStack mirrors the containers currently being rendered. The innermost
// container's storage is on top.
type StateStack struct {
	items []*StateManagerStorage
	root  *StateManagerStorage
}

// NewStateStack returns a stack that falls back to root when empty.
func NewStateStack(root *StateManagerStorage) *StateStack {
	return &StateStack{root: root}
}

// Push enters a container.
func (st *StateStack) Push(s *StateManagerStorage) {
	st.items = append(st.items, s)
}

// Pop leaves the innermost container. Popping an empty stack is a no-op.
func (st *StateStack) Pop() {
	if len(st.items) == 0 {
		return
	}
	st.items[len(st.items)-1] = nil
	st.items = st.items[:len(st.items)-1]
}

// Current returns the innermost storage, or the root storage when no
// container is being rendered.
func (st *StateStack) Current() *StateManagerStorage {
	if len(st.items) == 0 {
		return st.root
	}
	return st.items[len(st.items)-1]
}

// CurrentStateManager returns Current().StateManager().
func (st *StateStack) CurrentStateManager() *StateManager {
	return st.Current().state
}

// Depth returns the number of pushed storages.
func (st *StateStack) Depth() int { return len(st.items) }
