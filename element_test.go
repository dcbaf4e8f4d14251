package thicket

import (
	"reflect"
	"testing"
)

type valueElement struct {
	name string
}

func (v valueElement) Render() Element { return v }

type uncomparable struct {
	items []int
}

func (u uncomparable) Render() Element { return u }

func TestKindName(t *testing.T) {
	tests := []struct {
		el   Element
		want string
	}{
		{&plain{}, "plain"},
		{valueElement{}, "valueElement"},
		{&DisableScope{}, "DisableScope"},
	}
	for _, tt := range tests {
		if got := KindName(tt.el); got != tt.want {
			t.Errorf("KindName(%T) = %q, want %q", tt.el, got, tt.want)
		}
	}
	if Kind(&plain{}) != reflect.TypeFor[*plain]() {
		t.Error("Kind is not the concrete type")
	}
}

func TestGenericDefinition(t *testing.T) {
	def, ok := genericDefinition(reflect.TypeFor[*list[int]]())
	if !ok {
		t.Fatal("list[int] not recognized as generic")
	}
	def2, _ := genericDefinition(reflect.TypeFor[list[string]]())
	if def != def2 {
		t.Errorf("definitions differ: %q vs %q", def, def2)
	}
	if _, ok := genericDefinition(reflect.TypeFor[*plain]()); ok {
		t.Error("plain is not generic")
	}
}

func TestSameElement(t *testing.T) {
	p := &plain{}
	if !sameElement(p, p) {
		t.Error("pointer should be the same as itself")
	}
	if sameElement(p, &plain{}) {
		t.Error("distinct pointers reported the same")
	}
	if !sameElement(valueElement{"a"}, valueElement{"a"}) {
		t.Error("equal comparable values should be the same")
	}
	if sameElement(valueElement{"a"}, valueElement{"b"}) {
		t.Error("different values reported the same")
	}
	if sameElement(uncomparable{}, uncomparable{}) {
		t.Error("uncomparable values should never be the same")
	}
	if sameElement(p, &other{}) {
		t.Error("different kinds reported the same")
	}
}

func TestManagerValueElementSelfReplacement(t *testing.T) {
	m, _, _ := newTestManager(Config{})
	if err := m.RenderDOM(valueElement{"x"}, nil); err != nil {
		t.Fatalf("RenderDOM: %v", err)
	}
}

func TestKeyField(t *testing.T) {
	var k Keyed = &plain{}
	k.SetKey("x")
	if k.GetKey() != "x" {
		t.Errorf("GetKey = %q", k.GetKey())
	}
}
