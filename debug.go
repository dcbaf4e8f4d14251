package thicket

import (
	"time"
)

// passStats holds per-pass counters. They feed metrics on every pass and the
// debug log when Config.Debug is set.
type passStats struct {
	pass     uint64
	elements int
	failures int
	evicted  int
	events   int
	duration time.Duration
}

// debugLog logs the stats of a finished pass.
func (m *Manager) debugLog(stats passStats) {
	if !m.cfg.Debug {
		return
	}
	m.logger.Debug("pass complete",
		"pass", stats.pass,
		"elements", stats.elements,
		"failures", stats.failures,
		"evicted", stats.evicted,
		"events", stats.events,
		"duration", stats.duration,
	)
}

// debugCheckStackDepth warns if container nesting exceeds the threshold.
const debugMaxStackDepth = 32

func (m *Manager) debugCheckStackDepth(c Container) {
	if !m.cfg.Debug {
		return
	}
	if depth := m.stack.Depth(); depth > debugMaxStackDepth {
		m.logger.Warn("container nesting is deep",
			"depth", depth, "threshold", debugMaxStackDepth, "container", c.GetKey())
	}
}

// debugCheckChildCount warns if a container has more than 1000 children.
const debugMaxChildCount = 1000

func (m *Manager) debugCheckChildCount(c Container, n int) {
	if !m.cfg.Debug {
		return
	}
	if n > debugMaxChildCount {
		m.logger.Warn("container has many children",
			"container", c.GetKey(), "children", n, "threshold", debugMaxChildCount)
	}
}
