package willowbind

// AddAnimate runs the node's declarative "animation" entry, merged over the
// graph's default animation config. It does nothing unless the merged
// config has from, to and use.
//
// from is applied at once so the node never shows its unanimated state.
// With useTween unset, the node's native keyframe animation runs
// [from, middle?, to] and to is applied as the resting state when it
// finishes. With useTween set, a Tween on the graph's scheduler applies
// formatter(value) on every tick.
func AddAnimate(g Graph, n Node, attrs Attrs) {
	if n == nil || !truthy(attrs[keyAnimation]) {
		return
	}
	merged := mergeAny(g.RenderAttrs().Animation, attrs[keyAnimation])
	cfg, err := decodeAnimationConfig(merged)
	if err != nil {
		return
	}
	if cfg.From == nil || cfg.To == nil || cfg.Use == nil {
		return
	}
	from, to := cfg.From, cfg.To
	n.SetAttrs(from)

	if !cfg.UseTween {
		opts := merged.Omit("from", "to", "formatter", "use")
		if _, ok := opts["fill"]; !ok {
			opts["fill"] = FillBoth
		}
		keys := []Attrs{from, to}
		if cfg.Middle != nil {
			keys = []Attrs{from, cfg.Middle, to}
		}
		n.Animate(keys, opts).OnFinish(func() {
			delete(to, keyOffset)
			n.SetAttrs(to)
		})
		return
	}

	format := cfg.Formatter
	NewTween(cfg.Easing).
		From(from).
		To(to).
		Delay(cfg.Delay).
		Duration(cfg.Duration).
		OnUpdate(func(v Attrs) {
			n.SetAttrs(format(v))
		}).
		Start(g.Scheduler())
}
