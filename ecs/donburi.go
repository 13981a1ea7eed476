package ecs

import (
	"github.com/phanxgames/willowbind"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MouseEvent is the payload published to MouseEventType.
type MouseEvent struct {
	// Name is the notification name the dataset received ("mouseEvent").
	Name string
	willowbind.MouseEvent
}

// MouseEventType is the Donburi event type for delegated mouse events.
var MouseEventType = events.NewEventType[MouseEvent]()

type donburiDataset struct {
	world donburi.World
}

// NewDonburiDataset creates a Dataset backed by a Donburi world.
// Notifications are published to MouseEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiDataset(world donburi.World) willowbind.Dataset {
	return &donburiDataset{world: world}
}

func (d *donburiDataset) DispatchEvent(name string, evt willowbind.MouseEvent) {
	MouseEventType.Publish(d.world, MouseEvent{Name: name, MouseEvent: evt})
}
