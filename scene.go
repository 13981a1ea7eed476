package willowbind

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Graph is the host object the binder functions consult: render defaults,
// the ref table, the dataset that receives delegated mouse events, and the
// scheduler that drives tweens.
type Graph interface {
	RenderAttrs() RenderAttrs
	AddRef(name string, n Node) error
	Dataset() Dataset
	Scheduler() *Scheduler
}

var (
	// ErrInvalidRef is returned by Scene.AddRef for an empty ref name.
	ErrInvalidRef = errors.New("willowbind: invalid ref name")
	// ErrRefExists is returned by Scene.AddRef when the name is taken by a
	// different node.
	ErrRefExists = errors.New("willowbind: ref already registered")
)

// Scene is the top-level host: it owns the element tree, the render
// defaults, the ref table and the tween scheduler, and turns pointer input
// into element events.
type Scene struct {
	root        *Element
	renderAttrs RenderAttrs
	refs        map[string]Node
	dataset     Dataset
	scheduler   Scheduler

	// ClearColor fills the screen before the debug draw when its alpha is
	// non-zero.
	ClearColor color.RGBA

	// Input state
	pointer     pointerState
	injectQueue []syntheticPointerEvent
	hitBuf      []*Element

	updateFunc func() error
}

// NewScene creates a new scene with a pre-created root element and
// DefaultRenderAttrs.
func NewScene() *Scene {
	return &Scene{
		root:        NewElement("root", nil),
		renderAttrs: DefaultRenderAttrs(),
		refs:        make(map[string]Node),
	}
}

// Root returns the scene's root element.
func (s *Scene) Root() *Element {
	return s.root
}

// RenderAttrs returns the scene's render defaults.
func (s *Scene) RenderAttrs() RenderAttrs {
	return s.renderAttrs
}

// SetRenderAttrs replaces the scene's render defaults. Meant to be called
// once during setup.
func (s *Scene) SetRenderAttrs(ra RenderAttrs) {
	s.renderAttrs = ra
}

// AddRef registers n under name. Re-registering the same node under the
// same name is allowed.
func (s *Scene) AddRef(name string, n Node) error {
	if name == "" {
		return ErrInvalidRef
	}
	if cur, ok := s.refs[name]; ok && cur != n {
		return fmt.Errorf("%w: %q", ErrRefExists, name)
	}
	s.refs[name] = n
	return nil
}

// Ref returns the node registered under name, or nil.
func (s *Scene) Ref(name string) Node {
	return s.refs[name]
}

// Dataset returns the dataset that receives delegated mouse events.
func (s *Scene) Dataset() Dataset {
	return s.dataset
}

// SetDataset sets the dataset that receives delegated mouse events.
func (s *Scene) SetDataset(ds Dataset) {
	s.dataset = ds
}

// Scheduler returns the scene's tween scheduler.
func (s *Scene) Scheduler() *Scheduler {
	return &s.scheduler
}

// SetUpdateFunc sets a callback invoked once per Update, after the clock
// has advanced and input has been processed.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Bind runs a full render pass for n with the scene as graph.
func (s *Scene) Bind(n Node, attrs Attrs) {
	Bind(s, n, attrs)
}

// Update advances the clock by one tick at the current TPS and processes
// input. Call it from ebiten.Game.Update.
func (s *Scene) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))
	s.Tick(dt)
	s.processInput()
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Tick advances keyframe animations, transitions and tweens by dt seconds.
func (s *Scene) Tick(dt float32) {
	updateElements(s.root, float64(dt))
	s.scheduler.Update(dt)
}

func updateElements(e *Element, dt float64) {
	e.update(dt)
	for _, child := range e.children {
		updateElements(child, dt)
	}
}

// Draw paints every visible element as a filled rectangle using its
// x, y, width, height, fillColor and opacity attributes. It is a debug view,
// not a renderer.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A != 0 {
		screen.Fill(s.ClearColor)
	}
	s.drawElement(screen, s.root, 0, 0, 1)
}

func (s *Scene) drawElement(dst *ebiten.Image, e *Element, ox, oy, alpha float64) {
	if !e.Visible {
		return
	}
	b := e.Bounds()
	if op, ok := toFloat(e.Attr("opacity")); ok {
		alpha *= op
	}
	if c, ok := parseColor(e.Attr("fillColor")); ok && b.Width > 0 && b.Height > 0 {
		vector.DrawFilledRect(dst,
			float32(ox+b.X), float32(oy+b.Y), float32(b.Width), float32(b.Height),
			fillColor(c, alpha), false)
	}
	for _, child := range e.children {
		s.drawElement(dst, child, ox+b.X, oy+b.Y, alpha)
	}
}

// fillColor converts a parsed fillColor, whose channels are straight as
// written in hex, to a drawable color with its alpha scaled by a.
func fillColor(c color.RGBA, a float64) color.NRGBA {
	if a > 1 {
		a = 1
	}
	if a < 0 {
		a = 0
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A)*a + 0.5)}
}
