// Package willowbind attaches declarative animation, state transitions, ref
// capture and event delegation to retained scene nodes.
//
// A declarative UI layer re-renders by handing each node a fresh attribute
// bag ([Attrs]). willowbind decides what to do with it: which listeners to
// (re)install, which attributes to set now, which to transition to, and
// which animation strategy to hand the renderer.
//
// # Render pass
//
// [Bind] runs the four binder functions in order:
//
//	scene := willowbind.NewScene()
//	box := willowbind.NewElement("box", nil)
//	scene.Root().AddChild(box)
//
//	scene.Bind(box, willowbind.Attrs{
//		"ref":   "box",
//		"x":     20, "y": 20, "width": 80, "height": 40,
//		"onClick": func(ctx willowbind.EventContext) { ... },
//		"state": "normal",
//		"states": willowbind.Attrs{
//			"normal": willowbind.Attrs{"fillColor": "steelblue"},
//			"hover":  willowbind.Attrs{"fillColor": "orange"},
//		},
//	})
//
// [AddEvent] turns "on*" keys into listeners. Every (node, event type) pair
// keeps a single stable [Listener] across re-renders, held in the node's
// [HandlerMemo]; rebinding swaps the callback it invokes.
//
// [AddRef] consumes "ref" and registers the node with the graph. Failures
// are logged, never returned.
//
// [AddAttrs] applies attributes. With "state" and "states" it only acts
// when the state changes, and then transitions from the old state's overlay
// to the new one.
//
// [AddAnimate] reads "animation", merged over the graph's [RenderAttrs],
// and either runs the node's native keyframe animation or a [Tween] on the
// graph's [Scheduler].
//
// # Collaborators
//
// The binder functions only talk to the [Node] and [Graph] interfaces. The
// package also ships implementations of both: [Element], a retained
// attribute node, and [Scene], a host with a ref table, pointer input,
// a debug draw, and an [Ebitengine] loop via [Run]. Tweens use [gween].
//
// There is no global clock. [Scene.Update] (or [Scene.Tick] in tests)
// advances every animation, transition and tween.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package willowbind
