package willowbind

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Event types emitted by Scene pointer processing.
const (
	EventMouseDown  = "mousedown"
	EventMouseUp    = "mouseup"
	EventMouseMove  = "mousemove"
	EventMouseEnter = "mouseenter"
	EventMouseLeave = "mouseleave"
	EventClick      = "click"
)

// --- Listener registry ---

// AddEventListener attaches l for typ. A listener already attached for typ
// is not added twice.
func (e *Element) AddEventListener(typ string, l *Listener) {
	if l == nil || e.disposed {
		return
	}
	for _, cur := range e.listeners[typ] {
		if cur == l {
			return
		}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*Listener)
	}
	e.listeners[typ] = append(e.listeners[typ], l)
}

// RemoveEventListener detaches l from typ. No-op if it is not attached.
func (e *Element) RemoveEventListener(typ string, l *Listener) {
	s := e.listeners[typ]
	for i := range s {
		if s[i] == l {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			s = s[:len(s)-1]
			if len(s) == 0 {
				delete(e.listeners, typ)
			} else {
				e.listeners[typ] = s
			}
			return
		}
	}
}

// ListenerCount returns how many listeners are attached for typ.
func (e *Element) ListenerCount(typ string) int {
	return len(e.listeners[typ])
}

// DispatchEvent delivers evt to every listener attached for evt.Type, in
// attach order. Target defaults to e. Listeners added or removed while
// dispatching take effect on the next dispatch.
func (e *Element) DispatchEvent(evt Event) {
	s := e.listeners[evt.Type]
	if len(s) == 0 {
		return
	}
	if evt.Target == nil {
		evt.Target = e
	}
	snapshot := make([]*Listener, len(s))
	copy(snapshot, s)
	for _, l := range snapshot {
		l.HandleEvent(evt)
	}
}

// --- Per-pointer state ---

type pointerState struct {
	down      bool
	lastX     float64
	lastY     float64
	moved     bool
	hitNode   *Element
	hoverNode *Element // last element the pointer was hovering over (for enter/leave)
	button    MouseButton
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS), appending
// interactable elements with a non-empty area to buf together with their
// world-space bounds. Skips Visible=false or Interactable=false subtrees.
func collectInteractable(e *Element, ox, oy float64, buf []*Element, rects []Rect) ([]*Element, []Rect) {
	if !e.Visible || !e.Interactable {
		return buf, rects
	}
	b := e.Bounds()
	b.X += ox
	b.Y += oy
	if b.Width > 0 && b.Height > 0 {
		buf = append(buf, e)
		rects = append(rects, b)
	}
	for _, child := range e.children {
		buf, rects = collectInteractable(child, b.X, b.Y, buf, rects)
	}
	return buf, rects
}

// hitTest finds the topmost interactable element at (x, y).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(x, y float64) *Element {
	var rects []Rect
	s.hitBuf, rects = collectInteractable(s.root, 0, 0, s.hitBuf[:0], nil)

	// Iterate backward (reverse painter order): topmost visual element first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		if rects[i].Contains(x, y) {
			return s.hitBuf[i]
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update to handle mouse input. Injected
// events take precedence over the real mouse for the frame they are
// consumed in.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}
	s.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer runs the pointer state machine for the mouse.
func (s *Scene) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	target := s.hitTest(x, y)

	// Fire hover enter/leave when the hovered element changes.
	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			fire(ps.hoverNode, EventMouseLeave, x, y, button)
		}
		if target != nil {
			fire(target, EventMouseEnter, x, y, button)
		}
		ps.hoverNode = target
	}

	moved := !ps.moved || x != ps.lastX || y != ps.lastY
	ps.moved = true
	ps.lastX, ps.lastY = x, y

	switch {
	case pressed && !ps.down:
		// Just pressed: capture button for the duration of this interaction.
		ps.down = true
		ps.button = button
		ps.hitNode = target
		fire(target, EventMouseDown, x, y, button)
	case !pressed && ps.down:
		// Just released: use button from press start.
		if ps.hitNode != nil && ps.hitNode == target {
			fire(target, EventClick, x, y, ps.button)
		}
		fire(target, EventMouseUp, x, y, ps.button)
		ps.down = false
		ps.hitNode = nil
	case moved:
		fire(target, EventMouseMove, x, y, button)
	}
}

func fire(e *Element, typ string, x, y float64, button MouseButton) {
	if e == nil {
		return
	}
	e.DispatchEvent(Event{Type: typ, Target: e, X: x, Y: y, Button: button})
}
