package willowbind

// Node is the contract the binder functions consume. Implementations are
// owned by the rendering side; the binders only call these methods.
type Node interface {
	// Attr returns the current value of a single attribute, or nil.
	Attr(name string) any
	// SetAttrs applies every entry of attrs to the node.
	SetAttrs(attrs Attrs)
	// Animate runs a native keyframe animation. opts carries duration and
	// delay (milliseconds), easing, fill and anything else the node supports.
	Animate(keyframes []Attrs, opts Attrs) Animation
	// Transition returns a setter that moves attributes to their new values
	// over the given number of seconds.
	Transition(seconds float64) Transition
	// AddEventListener attaches l for typ. Adding the same listener twice is
	// a no-op.
	AddEventListener(typ string, l *Listener)
	// RemoveEventListener detaches l from typ if attached.
	RemoveEventListener(typ string, l *Listener)
	// Handlers returns the node's handler memo. Implementations normally
	// embed HandlerMemo to satisfy this.
	Handlers() *HandlerMemo
}

// Animation is a running keyframe animation.
type Animation interface {
	// OnFinish registers fn to run once the animation completes. If it has
	// already completed, fn runs immediately.
	OnFinish(fn func())
}

// Transition applies attributes over time.
type Transition interface {
	SetAttrs(attrs Attrs)
}

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic, willowbind is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Element ---

// Element is the retained attribute node shipped with willowbind. It keeps
// its attributes in a flat bag, runs keyframe animations and transitions off
// the scene clock, and dispatches events to registered listeners.
//
// Positional attributes used for hit testing and the debug draw are "x",
// "y", "width" and "height"; "fillColor" and "opacity" style the rectangle.
type Element struct {
	HandlerMemo

	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Visibility & interaction
	Visible      bool
	Interactable bool

	attrs     Attrs
	listeners map[string][]*Listener

	anims       []*keyframeAnimation
	transitions []*transition

	disposed bool
}

// NewElement creates an element with the given attributes already applied.
func NewElement(name string, attrs Attrs) *Element {
	e := &Element{
		ID:           nextNodeID(),
		Name:         name,
		Visible:      true,
		Interactable: true,
		attrs:        Attrs{},
	}
	e.SetAttrs(attrs)
	return e
}

// Attr returns the current value of name, or nil.
func (e *Element) Attr(name string) any {
	return e.attrs[name]
}

// Attrs returns a copy of every attribute currently set.
func (e *Element) Attrs() Attrs {
	return e.attrs.Omit()
}

// SetAttrs applies each entry of attrs. A nil value removes the attribute.
func (e *Element) SetAttrs(attrs Attrs) {
	for k, v := range attrs {
		if v == nil {
			delete(e.attrs, k)
			continue
		}
		e.attrs[k] = v
	}
}

// Bounds returns the element's local rectangle from its x, y, width and
// height attributes.
func (e *Element) Bounds() Rect {
	num := func(k string) float64 {
		f, _ := toFloat(e.attrs[k])
		return f
	}
	return Rect{X: num("x"), Y: num("y"), Width: num("width"), Height: num("height")}
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("willowbind: cannot add nil child")
	}
	if child.disposed || e.disposed {
		panic("willowbind: AddChild on disposed element")
	}
	if isAncestor(child, e) {
		panic("willowbind: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("willowbind: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// --- Disposal ---

// Dispose removes this element from its parent, stops its animations, drops
// its listeners and handler memo, and recursively disposes all descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.anims = nil
	e.transitions = nil
	e.listeners = nil
	e.HandlerMemo = HandlerMemo{}
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of e.
func isAncestor(candidate, e *Element) bool {
	for p := e; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
