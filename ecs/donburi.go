package ecs

import (
	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for thicket element events.
var InteractionEventType = events.NewEventType[thicket.InteractionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on InteractionEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) thicket.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event thicket.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
