// Package ecs provides ECS adapters for thicket's interaction events.
//
// The primary adapter is [NewDonburiSink], which forwards every element
// event a Manager dispatches (click, press, hover, focus, scroll) into a
// [Donburi] world as a typed event. Subscribe to [InteractionEventType] in
// your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	m := thicket.NewManager(thicket.Config{Sink: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
