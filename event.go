package willowbind

import (
	"strings"
)

// Event is a single interaction delivered to a node's listeners.
type Event struct {
	Type   string
	Target Node
	X, Y   float64
	Button MouseButton
	// Detail carries event-specific data for synthetic events.
	Detail any
}

// Listener wraps an event handler so it has a stable identity. Nodes
// de-duplicate and remove listeners by pointer.
type Listener struct {
	fn func(Event)
}

// NewListener returns a listener that calls fn.
func NewListener(fn func(Event)) *Listener {
	return &Listener{fn: fn}
}

// HandleEvent invokes the listener. Nil listeners are ignored.
func (l *Listener) HandleEvent(evt Event) {
	if l == nil || l.fn == nil {
		return
	}
	l.fn(evt)
}

// EventContext is the calling context a bound callback receives.
type EventContext struct {
	Graph Graph
	Node  Node
	Event Event
	// Key is the composite registry key, e.g. "change-click".
	Key string
	// Params holds extra parameters supplied at bind time.
	Params []any
}

// Callback is the handler shape stored in "on*" attributes.
type Callback func(EventContext)

// callbackOf normalizes an "on*" attribute value. Falsy or unrecognized
// values become a no-op.
func callbackOf(v any) Callback {
	switch f := v.(type) {
	case Callback:
		if f != nil {
			return f
		}
	case func(EventContext):
		if f != nil {
			return f
		}
	case func(Event):
		if f != nil {
			return func(ctx EventContext) { f(ctx.Event) }
		}
	case func():
		if f != nil {
			return func(EventContext) { f() }
		}
	}
	return func(EventContext) {}
}

// --- Handler memo ---

type memoEntry struct {
	listener *Listener
	cb       Callback
	graph    Graph
	params   []any
}

// HandlerMemo caches one listener per composite key for a single node, so
// every re-render hands the node the same *Listener for the same key. Embed
// it in a node implementation; the memo then lives and dies with the node.
//
// The zero value is ready to use.
type HandlerMemo struct {
	entries map[string]*memoEntry
}

// Handlers returns m. It lets embedding types satisfy Node.
func (m *HandlerMemo) Handlers() *HandlerMemo {
	return m
}

// Len returns the number of memoized listeners.
func (m *HandlerMemo) Len() int {
	return len(m.entries)
}

// get returns the stable listener for key on n, creating it on first use.
// The callback, graph and params are refreshed on every call so the listener
// always invokes the latest binding.
func (m *HandlerMemo) get(cb Callback, g Graph, n Node, key string, params ...any) *Listener {
	if m.entries == nil {
		m.entries = make(map[string]*memoEntry)
	}
	ent, ok := m.entries[key]
	if !ok {
		ent = &memoEntry{}
		ent.listener = NewListener(func(evt Event) {
			ent.cb(EventContext{Graph: ent.graph, Node: n, Event: evt, Key: key, Params: ent.params})
		})
		m.entries[key] = ent
	}
	ent.cb = cb
	ent.graph = g
	ent.params = params
	return ent.listener
}

// --- Dataset delegation ---

// MouseEvent is the semantic notification a dataset receives for
// "onMouseEvent" bindings.
type MouseEvent struct {
	Event Event
	Node  Node
	// Name is the delegated event type, e.g. "hover".
	Name  string
	Data  any
	Index any
}

// Dataset receives delegated mouse events from bound nodes.
type Dataset interface {
	DispatchEvent(name string, evt MouseEvent)
}

// DatasetFunc adapts a function to Dataset.
type DatasetFunc func(name string, evt MouseEvent)

// DispatchEvent calls f.
func (f DatasetFunc) DispatchEvent(name string, evt MouseEvent) {
	f(name, evt)
}

// mouseEventName is the notification name delegated events are sent under.
const mouseEventName = "mouseEvent"

// delegateMouseEvent translates a raw event into a "mouseEvent"
// notification on ds. The first bound parameter is the (data, index) pair.
func delegateMouseEvent(ds Dataset, ctx EventContext) {
	if ds == nil {
		return
	}
	var data, index any
	if len(ctx.Params) > 0 {
		if pair, ok := ctx.Params[0].([]any); ok {
			if len(pair) > 0 {
				data = pair[0]
			}
			if len(pair) > 1 {
				index = pair[1]
			}
		}
	}
	name := ctx.Key
	if _, after, ok := strings.Cut(ctx.Key, "-"); ok {
		name = after
	}
	ds.DispatchEvent(mouseEventName, MouseEvent{
		Event: ctx.Event,
		Node:  ctx.Node,
		Name:  name,
		Data:  data,
		Index: index,
	})
}

func datasetDelegate(ctx EventContext) {
	var ds Dataset
	if ctx.Graph != nil {
		ds = ctx.Graph.Dataset()
	}
	delegateMouseEvent(ds, ctx)
}

// --- Binder ---

// AddEvent installs a listener for every "on*" key in attrs and deletes the
// consumed keys. Each (node, type) pair ends up with exactly one listener
// per binding origin, no matter how often the node is re-rendered.
//
// "onMouseEvent" takes a slice whose first element is a comma-separated list
// of event types and whose remaining elements are forwarded to the dataset
// delegate. Any other "onXxx" key binds a callback to event type "xxx".
func AddEvent(g Graph, n Node, attrs Attrs) {
	var memo *HandlerMemo
	if n != nil {
		memo = n.Handlers()
	}
	for _, key := range attrs.Keys() {
		if !strings.HasPrefix(key, eventPrefix) {
			continue
		}
		// Without a node or memo nothing is bound, but the callbacks are
		// still consumed so they never reach SetAttrs.
		if memo == nil {
			delete(attrs, key)
			continue
		}
		if key == keyMouseEvent {
			bindMouseEvent(g, n, memo, attrs[key])
		} else {
			typ := strings.ToLower(strings.TrimPrefix(key, eventPrefix))
			l := memo.get(callbackOf(attrs[key]), g, n, "change-"+typ)
			n.RemoveEventListener(typ, l)
			n.AddEventListener(typ, l)
		}
		delete(attrs, key)
	}
}

func bindMouseEvent(g Graph, n Node, memo *HandlerMemo, v any) {
	params, ok := v.([]any)
	if !ok || len(params) == 0 {
		return
	}
	types, _ := params[0].(string)
	extra := params[1:]
	for _, typ := range strings.Split(types, ",") {
		typ = strings.TrimSpace(typ)
		if typ == "" {
			continue
		}
		l := memo.get(datasetDelegate, g, n, "dataset-"+typ, extra...)
		n.RemoveEventListener(typ, l)
		n.AddEventListener(typ, l)
	}
}
