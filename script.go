package thicket

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScriptStep is a single action in an event script.
type ScriptStep struct {
	Action string  `yaml:"action" json:"action"`
	X      float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty" json:"y,omitempty"`
	DX     float64 `yaml:"dx,omitempty" json:"dx,omitempty"`
	DY     float64 `yaml:"dy,omitempty" json:"dy,omitempty"`
	Frames int     `yaml:"frames,omitempty" json:"frames,omitempty"`
}

// EventScript is the top-level structure of an event script.
type EventScript struct {
	Steps []ScriptStep `yaml:"steps" json:"steps"`
}

// LoadEventScript parses a YAML (or JSON, which is valid YAML) event script
// and returns a runner for it.
func LoadEventScript(data []byte) (*ScriptRunner, error) {
	var script EventScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse event script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse event script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "release", "click", "move", "repaint", "scroll", "wait":
		default:
			return nil, fmt.Errorf("parse event script: step %d: %w %q", i, ErrUnknownStep, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// LoadEventScriptFile reads and parses an event script file.
func LoadEventScriptFile(path string) (*ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event script: %w", err)
	}
	return LoadEventScript(data)
}

// ScriptRunner sequences scripted input across passes of a Dispatcher.
type ScriptRunner struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

// Done reports whether every step has been executed and delivered.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step queues the next script action once the dispatcher has drained, then
// renders one pass of root through d.
func (r *ScriptRunner) Step(d *Dispatcher, root Element) error {
	r.advance(d)
	_, err := d.Step(root)
	if r.cursor >= len(r.steps) && r.waitCount == 0 && d.Pending() == 0 {
		r.done = true
	}
	return err
}

func (r *ScriptRunner) advance(d *Dispatcher) {
	if r.done || d.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		d.InjectPress(st.X, st.Y)
	case "release":
		d.InjectRelease(st.X, st.Y)
	case "click":
		d.InjectClick(st.X, st.Y)
	case "move":
		d.InjectMove(st.X, st.Y)
	case "repaint":
		d.InjectHover(st.X, st.Y)
	case "scroll":
		d.InjectScroll(st.X, st.Y, st.DX, st.DY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this pass counts as one
		}
	}
}
