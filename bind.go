package willowbind

// Bind runs one render pass of attrs against n: events and ref are consumed
// first, then the remaining attributes are applied, then the animation
// entry (if any) is started.
func Bind(g Graph, n Node, attrs Attrs) {
	if attrs == nil {
		attrs = Attrs{}
	}
	AddEvent(g, n, attrs)
	AddRef(g, n, attrs)
	if n == nil {
		return
	}
	AddAttrs(g, n, attrs)
	AddAnimate(g, n, attrs)
}
