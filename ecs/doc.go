// Package ecs provides ECS adapters for willowbind's delegated mouse events.
//
// The primary adapter is [NewDonburiDataset], which bridges "mouseEvent"
// notifications from onMouseEvent bindings into a [Donburi] world as typed
// events. Subscribe to [MouseEventType] in your ECS systems to receive them.
//
// Usage:
//
//	ds := ecs.NewDonburiDataset(world)
//	scene.SetDataset(ds)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
