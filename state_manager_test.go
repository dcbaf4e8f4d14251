package thicket

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStateManagerGenerateKey(t *testing.T) {
	m := NewStateManager()
	got := []string{
		m.GenerateKey(&plain{}),
		m.GenerateKey(&leaf{}),
		m.GenerateKey(&plain{}),
	}
	want := []string{"plain_0", "leaf_0", "plain_1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}

	m.ResetCounters()
	if k := m.GenerateKey(&plain{}); k != "plain_0" {
		t.Errorf("after reset = %q, want plain_0", k)
	}
}

func TestStateManagerGetOrCreate(t *testing.T) {
	m := NewStateManager()
	el := &plain{}
	st := m.GetOrCreateState(el)
	if el.Key != "plain_0" || st.Key != "plain_0" {
		t.Errorf("key = %q / %q, want synthesized plain_0", el.Key, st.Key)
	}
	if again := m.GetOrCreateState(&plain{KeyField{Key: "plain_0"}}); again != st {
		t.Error("same key and kind returned a new state")
	}
	if !m.HasState(el) || m.Len() != 1 {
		t.Error("HasState/Len disagree with stored state")
	}
	if m.HasState(&other{KeyField{Key: "plain_0"}}) {
		t.Error("HasState should check the element kind")
	}

	m.RemoveState(el)
	if m.HasState(el) {
		t.Error("state present after RemoveState")
	}
}

func TestStateManagerStatefulPayload(t *testing.T) {
	m := NewStateManager()
	st := m.GetOrCreateState(&counter{KeyField: KeyField{Key: "c"}})
	cs, ok := StateOf[*counterState](st)
	if !ok || cs == nil {
		t.Fatalf("payload = %T, want *counterState", st.State)
	}

	m.UpdateState(&counter{KeyField: KeyField{Key: "c"}}, &counterState{n: 7})
	cs, _ = StateOf[*counterState](st)
	if cs.n != 7 {
		t.Errorf("payload n = %d, want 7", cs.n)
	}
	if _, ok := StateOf[string](st); ok {
		t.Error("StateOf with the wrong type should fail")
	}
	if _, ok := StateOf[*counterState](nil); ok {
		t.Error("StateOf(nil) should fail")
	}
}

func TestStateManagerCleanup(t *testing.T) {
	m := NewStateManager()
	m.GetOrCreateState(&plain{KeyField{Key: "a"}})
	m.GetOrCreateState(&plain{KeyField{Key: "b"}})
	m.CleanupUnusedStates(1)

	m.GetOrCreateState(&plain{KeyField{Key: "a"}})
	if n := m.CleanupUnusedStates(1); n != 0 {
		t.Errorf("evicted %d, want 0", n)
	}
	m.GetOrCreateState(&plain{KeyField{Key: "a"}})
	if n := m.CleanupUnusedStates(1); n != 1 {
		t.Errorf("evicted %d, want 1", n)
	}
	if diff := cmp.Diff([]string{"a"}, m.Keys()); diff != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", diff)
	}
	if m.Frame() != 3 {
		t.Errorf("Frame = %d, want 3", m.Frame())
	}
}
