package ebitenhost

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phanxgames/thicket"
)

func TestInputFirstSampleIsMove(t *testing.T) {
	var in Input
	got := in.Translate(Sample{X: 3, Y: 4})
	want := []thicket.HostEvent{{Kind: thicket.HostPointerMove, Position: thicket.Vec2{X: 3, Y: 4}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestInputIdleSampleYieldsNothing(t *testing.T) {
	var in Input
	in.Translate(Sample{X: 3, Y: 4})
	if got := in.Translate(Sample{X: 3, Y: 4}); len(got) != 0 {
		t.Errorf("events = %v, want none", got)
	}
}

func TestInputPressAndRelease(t *testing.T) {
	var in Input
	in.Translate(Sample{X: 10, Y: 10})

	got := in.Translate(Sample{X: 10, Y: 10, Left: true, Modifiers: thicket.ModShift})
	want := []thicket.HostEvent{{
		Kind:      thicket.HostPressDown,
		Position:  thicket.Vec2{X: 10, Y: 10},
		Button:    thicket.MouseButtonLeft,
		Modifiers: thicket.ModShift,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("press mismatch (-want +got):\n%s", diff)
	}

	got = in.Translate(Sample{X: 12, Y: 10})
	want = []thicket.HostEvent{{
		Kind:     thicket.HostPressUp,
		Position: thicket.Vec2{X: 12, Y: 10},
		Button:   thicket.MouseButtonLeft,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("release mismatch (-want +got):\n%s", diff)
	}
}

func TestInputReleaseBeforePress(t *testing.T) {
	var in Input
	in.Translate(Sample{Left: true})
	got := in.Translate(Sample{Right: true})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Kind != thicket.HostPressUp || got[0].Button != thicket.MouseButtonLeft {
		t.Errorf("first = %+v, want left release", got[0])
	}
	if got[1].Kind != thicket.HostPressDown || got[1].Button != thicket.MouseButtonRight {
		t.Errorf("second = %+v, want right press", got[1])
	}
}

func TestInputScroll(t *testing.T) {
	var in Input
	in.Translate(Sample{X: 1, Y: 1})
	got := in.Translate(Sample{X: 1, Y: 1, WheelY: -2})
	want := []thicket.HostEvent{{
		Kind:     thicket.HostScroll,
		Position: thicket.Vec2{X: 1, Y: 1},
		Scroll:   thicket.Vec2{Y: -2},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scroll mismatch (-want +got):\n%s", diff)
	}
}
