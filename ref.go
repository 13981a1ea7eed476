package willowbind

import (
	"fmt"
	"log"
)

// AddRef consumes attrs["ref"] and registers n under it in the graph's ref
// table. Registration failures are logged and never interrupt the render
// pass.
func AddRef(g Graph, n Node, attrs Attrs) {
	ref := attrs[keyRef]
	delete(attrs, keyRef)
	if !truthy(ref) || n == nil {
		return
	}
	name, ok := ref.(string)
	if !ok {
		name = fmt.Sprint(ref)
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("willowbind: ref %q: %v", name, r)
		}
	}()
	if err := g.AddRef(name, n); err != nil {
		log.Printf("willowbind: ref %q: %v", name, err)
	}
}
