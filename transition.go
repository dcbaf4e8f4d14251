package thicket

import (
	"reflect"
	"slices"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionConfig animates style changes of a style-set. Easing is any
// gween easing function; nil means ease.Linear. An empty Properties list
// animates every property; otherwise unlisted properties switch immediately.
type TransitionConfig struct {
	Duration   time.Duration
	Easing     ease.TweenFunc
	Properties []string
}

// TransitionState is one in-flight (or finished) transition of an element.
type TransitionState struct {
	From, To   ResolvedStyle
	Start      time.Time
	Duration   time.Duration
	Easing     ease.TweenFunc
	Properties []string
	Completed  bool
}

func newTransition(from, to ResolvedStyle, cfg *TransitionConfig, now time.Time) *TransitionState {
	easing := cfg.Easing
	if easing == nil {
		easing = ease.Linear
	}
	return &TransitionState{
		From:       from,
		To:         to,
		Start:      now,
		Duration:   cfg.Duration,
		Easing:     easing,
		Properties: cfg.Properties,
	}
}

var linearEasing = reflect.ValueOf(ease.Linear).Pointer()

func isLinear(fn ease.TweenFunc) bool {
	return fn == nil || reflect.ValueOf(fn).Pointer() == linearEasing
}

// Progress returns the linear progress clamped to [0, 1] and the eased
// progress at now. Eased progress may leave [0, 1] for overshooting curves
// such as ease.OutBack. Curves other than ease.Linear are evaluated by gween
// in float32.
func (t *TransitionState) Progress(now time.Time) (raw, eased float64) {
	if t.Duration <= 0 {
		return 1, 1
	}
	elapsed := now.Sub(t.Start).Seconds()
	d := t.Duration.Seconds()
	raw = clamp01(elapsed / d)
	if isLinear(t.Easing) {
		return raw, raw
	}

	tw := gween.New(0, 1, float32(d), t.Easing)
	v, _ := tw.Set(float32(elapsed))
	return raw, float64(v)
}

// TransitionProcessor turns a resolved target style into the style to draw
// this pass, starting and advancing transitions on the element state.
type TransitionProcessor struct{}

// Process returns the current style for st given the newly resolved target.
//
// A new transition starts when the target differs from the running
// transition's target, or, with no transition yet, from the style drawn last
// pass. It starts from the style drawn last pass. A finished transition is
// not restarted until the target changes again.
func (TransitionProcessor) Process(st *ElementState, target ResolvedStyle, cfg *TransitionConfig, now time.Time) ResolvedStyle {
	if cfg == nil {
		st.Transition = nil
		st.setCurrent(target)
		return target
	}

	prev, hadPrev := st.current, st.hasCurrent
	switch tr := st.Transition; {
	case tr == nil:
		if hadPrev && prev != target {
			st.Transition = newTransition(prev, target, cfg, now)
		}
	case tr.To != target:
		from := tr.To
		if hadPrev {
			from = prev
		}
		st.Transition = newTransition(from, target, cfg, now)
	}

	tr := st.Transition
	if tr == nil || tr.Completed {
		st.setCurrent(target)
		return target
	}

	raw, eased := tr.Progress(now)
	if raw >= 1 {
		tr.Completed = true
		st.setCurrent(target)
		return target
	}
	cur := Interpolate(tr.From, tr.To, eased, tr.Properties)
	st.setCurrent(cur)
	return cur
}

func (s *ElementState) setCurrent(rs ResolvedStyle) {
	s.current = rs
	s.hasCurrent = true
}

// Interpolate blends from towards to at t. Colors blend per channel, insets
// per side rounded to whole pixels, scalars linearly. Discrete properties
// (font, font style, text alignment) switch to the target once t reaches 0.5.
// Properties not in props take the target value; an empty props animates
// all.
func Interpolate(from, to ResolvedStyle, t float64, props []string) ResolvedStyle {
	animated := func(name string) bool {
		return len(props) == 0 || slices.Contains(props, name)
	}
	out := to

	if animated(PropColor) {
		out.Color = from.Color.Lerp(to.Color, t)
	}
	if animated(PropBackgroundColor) {
		out.BackgroundColor = from.BackgroundColor.Lerp(to.BackgroundColor, t)
	}
	if animated(PropBorderColor) {
		out.BorderColor = from.BorderColor.Lerp(to.BorderColor, t)
	}
	if animated(PropWidth) {
		out.Width = lerp(from.Width, to.Width, t)
	}
	if animated(PropHeight) {
		out.Height = lerp(from.Height, to.Height, t)
	}
	if animated(PropPadding) {
		out.Padding = from.Padding.Lerp(to.Padding, t)
	}
	if animated(PropMargin) {
		out.Margin = from.Margin.Lerp(to.Margin, t)
	}
	if animated(PropFontSize) {
		out.FontSize = lerp(from.FontSize, to.FontSize, t)
	}
	if animated(PropBorderWidth) {
		out.BorderWidth = lerp(from.BorderWidth, to.BorderWidth, t)
	}
	if animated(PropBorderRadius) {
		out.BorderRadius = lerp(from.BorderRadius, to.BorderRadius, t)
	}

	if t < 0.5 {
		if animated(PropFont) {
			out.Font = from.Font
		}
		if animated(PropFontStyle) {
			out.FontStyle = from.FontStyle
		}
		if animated(PropTextAlign) {
			out.TextAlign = from.TextAlign
		}
	}
	return out
}
