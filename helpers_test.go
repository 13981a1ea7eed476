package willowbind

import (
	"math"
	"testing"
)

// --- Fakes ---

// fakeNode records every mutation the binder functions make.
type fakeNode struct {
	HandlerMemo

	attrs       Attrs
	sets        []Attrs
	anims       []*fakeAnim
	transitions []fakeTransition
	listeners   map[string][]*Listener
	adds        int
	removes     int
}

func newFakeNode(attrs Attrs) *fakeNode {
	n := &fakeNode{attrs: Attrs{}, listeners: map[string][]*Listener{}}
	for k, v := range attrs {
		n.attrs[k] = v
	}
	return n
}

func (n *fakeNode) Attr(name string) any { return n.attrs[name] }

func (n *fakeNode) SetAttrs(attrs Attrs) {
	n.sets = append(n.sets, attrs)
	for k, v := range attrs {
		n.attrs[k] = v
	}
}

func (n *fakeNode) Animate(keyframes []Attrs, opts Attrs) Animation {
	a := &fakeAnim{keyframes: keyframes, opts: opts}
	n.anims = append(n.anims, a)
	return a
}

func (n *fakeNode) Transition(seconds float64) Transition {
	return &fakeTransitionSetter{node: n, seconds: seconds}
}

func (n *fakeNode) AddEventListener(typ string, l *Listener) {
	n.adds++
	for _, cur := range n.listeners[typ] {
		if cur == l {
			return
		}
	}
	n.listeners[typ] = append(n.listeners[typ], l)
}

func (n *fakeNode) RemoveEventListener(typ string, l *Listener) {
	n.removes++
	s := n.listeners[typ]
	for i := range s {
		if s[i] == l {
			n.listeners[typ] = append(s[:i:i], s[i+1:]...)
			return
		}
	}
}

func (n *fakeNode) fire(typ string) {
	for _, l := range n.listeners[typ] {
		l.HandleEvent(Event{Type: typ, Target: n})
	}
}

type fakeAnim struct {
	keyframes []Attrs
	opts      Attrs
	callbacks []func()
}

func (a *fakeAnim) OnFinish(fn func()) { a.callbacks = append(a.callbacks, fn) }

func (a *fakeAnim) finish() {
	for _, fn := range a.callbacks {
		fn()
	}
}

type fakeTransition struct {
	seconds float64
	target  Attrs
}

type fakeTransitionSetter struct {
	node    *fakeNode
	seconds float64
}

func (t *fakeTransitionSetter) SetAttrs(attrs Attrs) {
	t.node.transitions = append(t.node.transitions, fakeTransition{seconds: t.seconds, target: attrs})
	for k, v := range attrs {
		t.node.attrs[k] = v
	}
}

// fakeGraph is a Graph with a configurable ref table.
type fakeGraph struct {
	render    RenderAttrs
	refs      map[string]Node
	refErr    error
	refPanic  bool
	refCalls  int
	dataset   Dataset
	scheduler Scheduler
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{render: DefaultRenderAttrs(), refs: map[string]Node{}}
}

func (g *fakeGraph) RenderAttrs() RenderAttrs { return g.render }

func (g *fakeGraph) AddRef(name string, n Node) error {
	g.refCalls++
	if g.refPanic {
		panic("registry exploded")
	}
	if g.refErr != nil {
		return g.refErr
	}
	g.refs[name] = n
	return nil
}

func (g *fakeGraph) Dataset() Dataset      { return g.dataset }
func (g *fakeGraph) Scheduler() *Scheduler { return &g.scheduler }

// --- Assertions ---

func num(t *testing.T, v any) float64 {
	t.Helper()
	f, ok := toFloat(v)
	if !ok {
		t.Fatalf("value %v (%T) is not a number", v, v)
	}
	return f
}

func assertNum(t *testing.T, label string, v any, want float64) {
	t.Helper()
	if got := num(t, v); math.Abs(got-want) > 0.01 {
		t.Errorf("%s = %v, want %v", label, got, want)
	}
}
