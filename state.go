package willowbind

// AddAttrs applies attrs to n. When attrs carries both "states" and
// "state", it only acts when state differs from the node's recorded state:
// the node is first set to attrs overlaid with the old state's entry, then
// transitioned to attrs overlaid with the new state's entry over the
// merged animation duration. A repeated call with the same state is a no-op.
func AddAttrs(g Graph, n Node, attrs Attrs) {
	if n == nil {
		return
	}
	if attrs == nil {
		attrs = Attrs{}
	}
	states, hasStates := asAttrs(attrs[keyStates])
	state := attrs[keyState]
	if !hasStates || !truthy(state) {
		n.SetAttrs(attrs)
		return
	}

	oldState := n.Attr(keyState)
	if sameValue(state, oldState) {
		return
	}
	oldStates, ok := asAttrs(n.Attr(keyStates))
	if !ok {
		oldStates = Attrs{}
	}
	var oldOverlay any
	if oldState != nil {
		oldOverlay = oldStates[stateKey(oldState)]
	}
	oldAttrs := mergeAny(Attrs{}, attrs, oldOverlay)
	newAttrs := mergeAny(Attrs{}, attrs, states[stateKey(state)])
	n.SetAttrs(oldAttrs)

	// Same weak decoding as AddAnimate, so "300" and 300 agree. A config
	// that does not decode transitions immediately.
	anim := mergeAny(Attrs{}, g.RenderAttrs().Animation, states[keyAnimation])
	var seconds float64
	if cfg, err := decodeAnimationConfig(anim); err == nil {
		seconds = cfg.Duration / 1000
	}
	n.Transition(seconds).SetAttrs(newAttrs)
}
