package willowbind

import (
	"github.com/mitchellh/mapstructure"
	"github.com/tanema/gween/ease"
)

// Fill modes accepted by Element.Animate.
const (
	FillNone      = "none"
	FillForwards  = "forwards"
	FillBackwards = "backwards"
	FillBoth      = "both"
)

// animateOptions is the typed view of the opts passed to Element.Animate.
// Unknown keys are ignored.
type animateOptions struct {
	Duration float64 `mapstructure:"duration"`
	Delay    float64 `mapstructure:"delay"`
	Easing   any     `mapstructure:"easing"`
	Fill     string  `mapstructure:"fill"`
}

type keyframeAnimation struct {
	frames  []Attrs
	offsets []float64
	base    Attrs // values the animated keys had before the animation

	delay    float64 // seconds
	duration float64 // seconds
	easing   ease.TweenFunc
	fill     string

	elapsed   float64
	finished  bool
	callbacks []func()
}

// OnFinish implements Animation.
func (a *keyframeAnimation) OnFinish(fn func()) {
	if fn == nil {
		return
	}
	if a.finished {
		fn()
		return
	}
	a.callbacks = append(a.callbacks, fn)
}

// Animate starts a keyframe animation on the element, driven by Scene.Tick.
// Each keyframe may carry an "offset" in [0, 1]; frames without one are
// spaced evenly. Keyframes are copied, so callers may reuse them.
func (e *Element) Animate(keyframes []Attrs, opts Attrs) Animation {
	var o animateOptions
	_ = mapstructure.WeakDecode(map[string]any(opts), &o)

	a := &keyframeAnimation{
		delay:    o.Delay / 1000,
		duration: o.Duration / 1000,
		easing:   EasingFunc(o.Easing),
		fill:     o.Fill,
		base:     Attrs{},
	}
	if a.fill == "" {
		a.fill = FillNone
	}
	for _, kf := range keyframes {
		a.frames = append(a.frames, Merge(kf))
	}
	if len(a.frames) == 0 || e.disposed {
		a.finished = true
		return a
	}
	a.offsets = frameOffsets(a.frames)
	for _, f := range a.frames {
		for k := range f {
			if k == keyOffset {
				continue
			}
			if _, seen := a.base[k]; !seen {
				a.base[k] = e.attrs[k]
			}
		}
	}
	if a.fill == FillBackwards || a.fill == FillBoth {
		e.SetAttrs(a.frames[0].Omit(keyOffset))
	}
	e.anims = append(e.anims, a)
	return a
}

// frameOffsets returns each frame's offset, spacing unspecified ones evenly.
func frameOffsets(frames []Attrs) []float64 {
	n := len(frames)
	out := make([]float64, n)
	for i, f := range frames {
		if off, ok := toFloat(f[keyOffset]); ok {
			out[i] = off
			continue
		}
		if n == 1 {
			out[i] = 1
			continue
		}
		out[i] = float64(i) / float64(n-1)
	}
	return out
}

// sample returns the interpolated attributes at eased progress p.
func (a *keyframeAnimation) sample(p float64) Attrs {
	last := len(a.frames) - 1
	if last == 0 || p <= a.offsets[0] {
		return a.frames[0].Omit(keyOffset)
	}
	for i := 0; i < last; i++ {
		lo, hi := a.offsets[i], a.offsets[i+1]
		if p > hi && i+1 < last {
			continue
		}
		local := 1.0
		if hi > lo {
			local = (p - lo) / (hi - lo)
		}
		if local > 1 {
			local = 1
		}
		return lerpAttrs(a.frames[i], a.frames[i+1], local)
	}
	return a.frames[last].Omit(keyOffset)
}

// update advances the animation and reports whether it finished.
func (a *keyframeAnimation) update(e *Element, dt float64) bool {
	if a.finished {
		return true
	}
	a.elapsed += dt
	t := a.elapsed - a.delay
	if t < 0 {
		return false
	}
	p := 1.0
	if a.duration > 0 {
		p = t / a.duration
	}
	if p < 1 {
		e.SetAttrs(a.sample(easeProgress(a.easing, p)))
		return false
	}
	if a.fill == FillForwards || a.fill == FillBoth {
		e.SetAttrs(a.frames[len(a.frames)-1].Omit(keyOffset))
	} else {
		e.SetAttrs(a.base)
	}
	a.finished = true
	return true
}

func (a *keyframeAnimation) finish() {
	cbs := a.callbacks
	a.callbacks = nil
	for _, fn := range cbs {
		fn()
	}
}

// --- Transitions ---

type transition struct {
	el       *Element
	duration float64 // seconds

	from, to Attrs
	elapsed  float64
	done     bool
}

// Transition returns a setter that moves attributes to new values over the
// given number of seconds. Numbers and colors interpolate linearly; other
// values are set immediately. A zero or negative duration sets everything
// at once.
func (e *Element) Transition(seconds float64) Transition {
	return &transition{el: e, duration: seconds}
}

// SetAttrs implements Transition. Keys it animates are taken over from any
// transition already running on the same element.
func (t *transition) SetAttrs(attrs Attrs) {
	e := t.el
	if t.duration <= 0 || e.disposed {
		e.SetAttrs(attrs)
		return
	}
	t.from, t.to = Attrs{}, Attrs{}
	immediate := Attrs{}
	for k, v := range attrs {
		cur, ok := e.attrs[k]
		if ok && interpolable(cur, v) {
			t.from[k] = cur
			t.to[k] = v
			continue
		}
		immediate[k] = v
	}
	e.SetAttrs(immediate)
	if len(t.to) == 0 {
		return
	}
	for _, other := range e.transitions {
		for k := range t.to {
			delete(other.to, k)
			delete(other.from, k)
		}
	}
	e.transitions = append(e.transitions, t)
}

func interpolable(a, b any) bool {
	if _, ok := toFloat(a); ok {
		_, ok = toFloat(b)
		return ok
	}
	if _, ok := b.(string); !ok {
		return false
	}
	_, okA := parseColor(a)
	_, okB := parseColor(b)
	return okA && okB
}

func (t *transition) update(dt float64) bool {
	if t.done {
		return true
	}
	t.elapsed += dt
	p := t.elapsed / t.duration
	if p >= 1 {
		// Land exactly on the target values.
		t.el.SetAttrs(t.to)
		t.done = true
		return true
	}
	t.el.SetAttrs(lerpAttrs(t.from, t.to, p))
	return false
}

// --- Per-frame update ---

// update advances the element's animations and transitions by dt seconds
// and runs completion callbacks for animations that finished.
func (e *Element) update(dt float64) {
	if len(e.anims) == 0 && len(e.transitions) == 0 {
		return
	}
	var finished []*keyframeAnimation
	anims := e.anims[:0]
	for _, a := range e.anims {
		if a.update(e, dt) {
			finished = append(finished, a)
			continue
		}
		anims = append(anims, a)
	}
	for i := len(anims); i < len(e.anims); i++ {
		e.anims[i] = nil
	}
	e.anims = anims

	trs := e.transitions[:0]
	for _, t := range e.transitions {
		if !t.update(dt) {
			trs = append(trs, t)
		}
	}
	for i := len(trs); i < len(e.transitions); i++ {
		e.transitions[i] = nil
	}
	e.transitions = trs

	// Callbacks run last; they may start new animations on e.
	for _, a := range finished {
		a.finish()
	}
}
