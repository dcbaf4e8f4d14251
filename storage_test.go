package thicket

import "testing"

func TestStorageChildKeys(t *testing.T) {
	s := NewStateManagerStorage()
	if k := s.GenerateChildKey(&node{}); k != "node_0" {
		t.Errorf("first = %q", k)
	}
	if k := s.GenerateChildKey(&node{}); k != "node_1" {
		t.Errorf("second = %q", k)
	}
	s.ResetAndCleanupUnusedState(5)
	if k := s.GenerateChildKey(&node{}); k != "node_0" {
		t.Errorf("after sweep = %q, want counters reset", k)
	}
}

func TestStorageGetOrCreateChild(t *testing.T) {
	s := NewStateManagerStorage()
	calls := 0
	factory := func() *StateManagerStorage {
		calls++
		return NewStateManagerStorage()
	}
	a := s.GetOrCreateChildStorage("a", factory)
	if b := s.GetOrCreateChildStorage("a", factory); b != a {
		t.Error("second lookup returned a different storage")
	}
	if calls != 1 {
		t.Errorf("factory calls = %d, want 1", calls)
	}
	if c := s.GetOrCreateChildStorage("c", nil); c == nil || s.ChildCount() != 2 {
		t.Error("nil factory should create a default storage")
	}
}

func TestStorageSweepCountsSubtree(t *testing.T) {
	root := NewStateManagerStorage()
	child := root.GetOrCreateChildStorage("panel", nil)
	child.StateManager().GetOrCreateState(&plain{KeyField{Key: "x"}})
	child.StateManager().GetOrCreateState(&plain{KeyField{Key: "y"}})
	grand := child.GetOrCreateChildStorage("inner", nil)
	grand.StateManager().GetOrCreateState(&plain{KeyField{Key: "z"}})

	if n := root.ResetAndCleanupUnusedState(0); n != 0 {
		t.Fatalf("first sweep evicted %d, want 0", n)
	}
	// Not visited in the second pass: the whole subtree goes.
	if n := root.ResetAndCleanupUnusedState(0); n != 3 {
		t.Errorf("evicted %d, want 3", n)
	}
	if root.ChildCount() != 0 {
		t.Error("panel storage not dropped")
	}
}

func TestStateStack(t *testing.T) {
	root := NewStateManagerStorage()
	st := NewStateStack(root)
	if st.Current() != root || st.Depth() != 0 {
		t.Fatal("empty stack should fall back to root")
	}
	a := NewStateManagerStorage()
	st.Push(a)
	if st.Current() != a || st.CurrentStateManager() != a.StateManager() {
		t.Error("Current is not the pushed storage")
	}
	st.Pop()
	st.Pop()
	if st.Current() != root {
		t.Error("pop past empty should leave root current")
	}
}
