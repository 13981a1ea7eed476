package willowbind

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween interpolates an attribute set from one value to another, one gween
// tween per numeric key. Build one with NewTween, configure it with the
// chained setters, and Start it on a Scheduler. Each tick passes the full
// interpolated set to the OnUpdate callback.
//
// Delay and duration are in milliseconds; Update takes seconds.
type Tween struct {
	easing   ease.TweenFunc
	from, to Attrs
	delay    float64
	duration float64
	onUpdate func(Attrs)

	tweens  map[string]*gween.Tween
	elapsed float64
	started bool

	// Done is set once the final value has been emitted.
	Done bool
}

// NewTween creates a tween with the given easing spec (see EasingFunc).
func NewTween(easing any) *Tween {
	return &Tween{easing: EasingFunc(easing)}
}

// From sets the start values.
func (tw *Tween) From(a Attrs) *Tween {
	tw.from = a
	return tw
}

// To sets the target values.
func (tw *Tween) To(a Attrs) *Tween {
	tw.to = a
	return tw
}

// Delay sets the wait before interpolation starts, in milliseconds.
func (tw *Tween) Delay(ms float64) *Tween {
	tw.delay = ms
	return tw
}

// Duration sets the interpolation time, in milliseconds.
func (tw *Tween) Duration(ms float64) *Tween {
	tw.duration = ms
	return tw
}

// OnUpdate sets the per-tick callback.
func (tw *Tween) OnUpdate(fn func(Attrs)) *Tween {
	tw.onUpdate = fn
	return tw
}

// Start schedules the tween on s and returns it.
func (tw *Tween) Start(s *Scheduler) *Tween {
	tw.prepare()
	s.Add(tw)
	return tw
}

func (tw *Tween) prepare() {
	if tw.started {
		return
	}
	tw.started = true
	tw.tweens = make(map[string]*gween.Tween, len(tw.to))
	d := float32(tw.duration / 1000)
	for k, end := range tw.to {
		a, okA := toFloat(tw.from[k])
		b, okB := toFloat(end)
		if okA && okB {
			tw.tweens[k] = gween.New(float32(a), float32(b), d, tw.easing)
		}
	}
}

// Update advances the tween by dt seconds and reports whether it finished.
// Nothing is emitted while the delay is running.
func (tw *Tween) Update(dt float32) bool {
	if tw.Done {
		return true
	}
	tw.prepare()
	tw.elapsed += float64(dt)
	delay := tw.delay / 1000
	if tw.elapsed < delay {
		return false
	}
	step := float32(tw.elapsed - delay)
	if prev := float32(tw.elapsed - float64(dt) - delay); prev > 0 {
		step = dt
	}

	finished := true
	vals := make(map[string]float64, len(tw.tweens))
	for k, g := range tw.tweens {
		v, done := g.Update(step)
		vals[k] = float64(v)
		if !done {
			finished = false
		}
	}
	progress := 1.0
	if tw.duration > 0 {
		progress = (tw.elapsed - delay) / (tw.duration / 1000)
	}
	if progress < 1 {
		finished = false
	}

	cur := make(Attrs, len(tw.to))
	for k, end := range tw.to {
		if v, ok := vals[k]; ok {
			// gween works in float32; land exactly on the target.
			if finished {
				cur[k] = end
			} else {
				cur[k] = v
			}
			continue
		}
		start, ok := tw.from[k]
		if !ok {
			cur[k] = end
			continue
		}
		// Colors interpolate; other non-numeric keys snap at the end.
		cur[k] = lerpValue(start, end, easeProgress(tw.easing, progress))
	}
	tw.Done = finished
	if tw.onUpdate != nil {
		tw.onUpdate(cur)
	}
	return finished
}

// --- Scheduler ---

// Updater is anything the Scheduler can advance.
type Updater interface {
	// Update advances by dt seconds and reports whether it is finished.
	Update(dt float32) bool
}

// Scheduler advances a set of running updaters on the host's clock. The zero
// value is ready to use.
//
// There is no global animation manager; the host calls Update itself,
// normally from Scene.Tick.
type Scheduler struct {
	items []Updater
}

// Add schedules u. It is first advanced on the next Update.
func (s *Scheduler) Add(u Updater) {
	s.items = append(s.items, u)
}

// Len returns the number of running updaters.
func (s *Scheduler) Len() int {
	return len(s.items)
}

// Update advances every updater by dt seconds and drops those that finished.
// Updaters added during Update run on the next call.
func (s *Scheduler) Update(dt float32) {
	n := len(s.items)
	kept := s.items[:0]
	for i := 0; i < n; i++ {
		u := s.items[i]
		if !u.Update(dt) {
			kept = append(kept, u)
		}
	}
	// Preserve anything added while iterating.
	kept = append(kept, s.items[n:]...)
	for i := len(kept); i < len(s.items); i++ {
		s.items[i] = nil
	}
	s.items = kept
}
