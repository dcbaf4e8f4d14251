package thicket

import (
	"reflect"
	"testing"
)

func TestContextStackPushPop(t *testing.T) {
	c := NewContextStack()
	kind := reflect.TypeFor[*provided]()
	outer, inner := &provided{value: "outer"}, &provided{value: "inner"}

	if c.Has(kind) {
		t.Fatal("empty stack has a provider")
	}
	if got := c.Get(kind, "def"); got != "def" {
		t.Errorf("Get on empty = %v, want default", got)
	}

	c.Push(kind, outer)
	c.Push(kind, inner)
	if v, _ := c.TryGet(kind); v != inner {
		t.Errorf("innermost = %v, want inner", v)
	}
	if c.Depth(kind) != 2 || c.Len() != 2 {
		t.Errorf("Depth = %d, Len = %d, want 2, 2", c.Depth(kind), c.Len())
	}

	c.Pop(kind)
	if v, _ := c.TryGet(kind); v != outer {
		t.Errorf("after pop = %v, want outer", v)
	}
	c.Pop(kind)
	c.Pop(kind) // empty pop is a no-op
	if c.Has(kind) || c.Len() != 0 {
		t.Error("stack not empty after popping everything")
	}
}

func TestContextStackKindsAreIndependent(t *testing.T) {
	c := NewContextStack()
	c.Push(reflect.TypeFor[*provided](), &provided{value: "p"})
	c.Push(reflect.TypeFor[*DisableScope](), &DisableScope{Disabled: true})

	p, ok := ContextOf[*provided](c)
	if !ok || p.value != "p" {
		t.Errorf("ContextOf[*provided] = %v, %v", p, ok)
	}
	if _, ok := ContextOf[*ThemeScope](c); ok {
		t.Error("ContextOf[*ThemeScope] found a provider")
	}
	if scope, ok := ambientDisable(c); !ok || !scope.Disabled {
		t.Error("ambientDisable missed the disabled scope")
	}
}
