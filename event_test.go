package willowbind

import (
	"testing"
)

func TestAddEventRebindInvokesLatestCallback(t *testing.T) {
	g := newFakeGraph()
	n := newFakeNode(nil)
	var calls []string

	AddEvent(g, n, Attrs{"onClick": func(EventContext) { calls = append(calls, "f1") }})
	AddEvent(g, n, Attrs{"onClick": func(EventContext) { calls = append(calls, "f2") }})

	if got := len(n.listeners["click"]); got != 1 {
		t.Fatalf("expected exactly 1 click listener, got %d", got)
	}
	n.fire("click")
	if len(calls) != 1 || calls[0] != "f2" {
		t.Errorf("calls = %v, want [f2]", calls)
	}
}

func TestAddEventHandlerStability(t *testing.T) {
	g := newFakeGraph()
	n := newFakeNode(nil)
	cb := func(EventContext) {}

	AddEvent(g, n, Attrs{"onClick": cb})
	first := n.listeners["click"][0]
	AddEvent(g, n, Attrs{"onClick": cb})
	second := n.listeners["click"][0]

	if first != second {
		t.Error("memoized handlers should be reference-equal across binds")
	}
	if n.Handlers().Len() != 1 {
		t.Errorf("memo entries = %d, want 1", n.Handlers().Len())
	}
	if got := len(n.listeners["click"]); got != 1 {
		t.Errorf("listeners = %d, want 1", got)
	}
}

func TestAddEventConsumesCallbackKeys(t *testing.T) {
	n := newFakeNode(nil)
	attrs := Attrs{
		"onClick":     func() {},
		"onMouseOver": nil,
		"x":           1,
		"opacity":     0.5,
	}
	AddEvent(newFakeGraph(), n, attrs)

	if len(attrs) != 2 || attrs["x"] != 1 || attrs["opacity"] != 0.5 {
		t.Errorf("remaining attrs = %v, want only x and opacity", attrs)
	}
	if len(n.listeners["click"]) != 1 {
		t.Error("click listener missing")
	}
	if len(n.listeners["mouseover"]) != 1 {
		t.Error("onMouseOver should bind lower-cased mouseover")
	}
	// A falsy callback binds a no-op.
	n.fire("mouseover")
}

func TestAddEventRemovesBeforeAdding(t *testing.T) {
	n := newFakeNode(nil)
	AddEvent(newFakeGraph(), n, Attrs{"onClick": func() {}})
	if n.removes != 1 || n.adds != 1 {
		t.Errorf("removes=%d adds=%d, want 1 and 1", n.removes, n.adds)
	}
}

func TestAddEventCallbackContext(t *testing.T) {
	g := newFakeGraph()
	n := newFakeNode(nil)
	var got EventContext
	AddEvent(g, n, Attrs{"onTap": Callback(func(ctx EventContext) { got = ctx })})

	n.fire("tap")
	if got.Graph != Graph(g) {
		t.Error("callback should receive the graph")
	}
	if got.Node != Node(n) {
		t.Error("callback should receive the node")
	}
	if got.Key != "change-tap" {
		t.Errorf("Key = %q, want change-tap", got.Key)
	}
	if got.Event.Type != "tap" {
		t.Errorf("Event.Type = %q", got.Event.Type)
	}
}

func TestAddEventCallbackShapes(t *testing.T) {
	n := newFakeNode(nil)
	var plain, withEvent int
	AddEvent(newFakeGraph(), n, Attrs{
		"onA": func() { plain++ },
		"onB": func(evt Event) {
			if evt.Type == "b" {
				withEvent++
			}
		},
		"onC": 42,
	})
	n.fire("a")
	n.fire("b")
	n.fire("c")
	if plain != 1 || withEvent != 1 {
		t.Errorf("plain=%d withEvent=%d", plain, withEvent)
	}
}

func TestAddEventMouseEventDelegation(t *testing.T) {
	g := newFakeGraph()
	var got []MouseEvent
	g.dataset = DatasetFunc(func(name string, evt MouseEvent) {
		if name != "mouseEvent" {
			t.Errorf("notification name = %q, want mouseEvent", name)
		}
		got = append(got, evt)
	})
	n := newFakeNode(nil)
	row := Attrs{"value": 12}
	attrs := Attrs{"onMouseEvent": []any{"hover,leave", []any{row, 3}}}

	AddEvent(g, n, attrs)

	if _, ok := attrs["onMouseEvent"]; ok {
		t.Error("onMouseEvent should be consumed")
	}
	if len(n.listeners["hover"]) != 1 || len(n.listeners["leave"]) != 1 {
		t.Fatalf("listeners: hover=%d leave=%d", len(n.listeners["hover"]), len(n.listeners["leave"]))
	}

	n.fire("hover")
	n.fire("leave")

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	for i, name := range []string{"hover", "leave"} {
		if got[i].Name != name {
			t.Errorf("notification %d name = %q, want %q", i, got[i].Name, name)
		}
		if got[i].Index != 3 {
			t.Errorf("notification %d index = %v, want 3", i, got[i].Index)
		}
		if d, ok := got[i].Data.(Attrs); !ok || d["value"] != 12 {
			t.Errorf("notification %d data = %v", i, got[i].Data)
		}
		if got[i].Node != Node(n) {
			t.Errorf("notification %d node mismatch", i)
		}
	}
}

func TestAddEventMouseEventRebindIsStable(t *testing.T) {
	g := newFakeGraph()
	var index any
	g.dataset = DatasetFunc(func(_ string, evt MouseEvent) { index = evt.Index })
	n := newFakeNode(nil)

	AddEvent(g, n, Attrs{"onMouseEvent": []any{"hover", []any{"a", 1}}})
	AddEvent(g, n, Attrs{"onMouseEvent": []any{" hover ", []any{"b", 2}}})

	if len(n.listeners["hover"]) != 1 {
		t.Fatalf("hover listeners = %d, want 1", len(n.listeners["hover"]))
	}
	n.fire("hover")
	if index != 2 {
		t.Errorf("index = %v, want the latest binding's 2", index)
	}
}

func TestAddEventMouseEventWithoutDataset(t *testing.T) {
	n := newFakeNode(nil)
	AddEvent(newFakeGraph(), n, Attrs{"onMouseEvent": []any{"hover"}})
	n.fire("hover")
}

func TestAddEventMalformedMouseEvent(t *testing.T) {
	n := newFakeNode(nil)
	attrs := Attrs{"onMouseEvent": "hover"}
	AddEvent(newFakeGraph(), n, attrs)
	if len(n.listeners) != 0 {
		t.Errorf("malformed onMouseEvent should bind nothing, got %v", n.listeners)
	}
	if _, ok := attrs["onMouseEvent"]; ok {
		t.Error("key should still be consumed")
	}
}

func TestAddEventOnElementDispatch(t *testing.T) {
	s := NewScene()
	el := NewElement("btn", nil)
	s.Root().AddChild(el)
	var clicks int

	for i := 0; i < 3; i++ {
		AddEvent(s, el, Attrs{"onClick": func() { clicks++ }})
	}
	if el.ListenerCount("click") != 1 {
		t.Fatalf("listeners = %d, want 1 after re-renders", el.ListenerCount("click"))
	}
	el.DispatchEvent(Event{Type: "click"})
	if clicks != 1 {
		t.Errorf("clicks = %d, want 1", clicks)
	}
}

func TestHandlerMemoKeysAreIndependent(t *testing.T) {
	var m HandlerMemo
	n := newFakeNode(nil)
	a := m.get(func(EventContext) {}, nil, n, "change-click")
	b := m.get(func(EventContext) {}, nil, n, "dataset-click")
	if a == b {
		t.Error("different composite keys must get different listeners")
	}
	if m.get(func(EventContext) {}, nil, n, "change-click") != a {
		t.Error("same key must return the same listener")
	}
}

// memolessNode is a node whose implementation has no handler memo.
type memolessNode struct{ *fakeNode }

func (memolessNode) Handlers() *HandlerMemo { return nil }

func TestAddEventConsumesKeysWithoutNodeOrMemo(t *testing.T) {
	tests := []struct {
		name string
		node Node
	}{
		{"nil node", nil},
		{"nil memo", memolessNode{newFakeNode(nil)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attrs := Attrs{
				"onClick":      func() {},
				"onMouseEvent": []any{"mouseenter"},
				"x":            1,
			}
			AddEvent(newFakeGraph(), tt.node, attrs)
			if len(attrs) != 1 || attrs["x"] != 1 {
				t.Errorf("attrs = %v, want only x left", attrs)
			}
		})
	}
}

func TestBindNeverPassesCallbacksToSetAttrs(t *testing.T) {
	n := memolessNode{newFakeNode(nil)}
	Bind(newFakeGraph(), n, Attrs{"onClick": func() {}, "x": 1})
	for _, set := range n.sets {
		if _, ok := set["onClick"]; ok {
			t.Fatalf("SetAttrs received a callback: %v", set)
		}
	}
	assertNum(t, "x", n.Attr("x"), 1)
}
