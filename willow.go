package willowbind

import (
	"fmt"
	"reflect"
	"sort"
)

// Attrs is a declarative attribute bag applied to a node for one render pass.
// Nested mappings may be Attrs or map[string]any; both are treated alike.
type Attrs map[string]any

// Reserved attribute keys consumed by the binder functions.
const (
	keyAnimation  = "animation"
	keyState      = "state"
	keyStates     = "states"
	keyRef        = "ref"
	keyOffset     = "offset"
	keyMouseEvent = "onMouseEvent"
	eventPrefix   = "on"
)

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Keys returns the bag's keys in sorted order.
func (a Attrs) Keys() []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Omit returns a shallow copy of a without the named keys.
func (a Attrs) Omit(names ...string) Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	for _, name := range names {
		delete(out, name)
	}
	return out
}

// asAttrs views v as a mapping. It accepts Attrs and map[string]any.
func asAttrs(v any) (Attrs, bool) {
	switch m := v.(type) {
	case Attrs:
		return m, m != nil
	case map[string]any:
		return Attrs(m), m != nil
	}
	return nil, false
}

// truthy mirrors the loose presence checks used by declarative configs:
// nil, false, zero numbers and empty strings count as absent.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// toFloat converts any Go numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}

// sameValue reports whether two attribute values are equal. Numbers compare
// by value regardless of their Go type.
func sameValue(a, b any) bool {
	fa, okA := toFloat(a)
	fb, okB := toFloat(b)
	if okA && okB {
		return fa == fb
	}
	return reflect.DeepEqual(a, b)
}

// stateKey formats a state value as a StateTable key.
func stateKey(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
