package willowbind

// Merge deep-merges the given mappings left to right into a fresh Attrs.
// Later leaf values win. Nested mappings are merged recursively and copied,
// so the result never aliases a mapping owned by an input. Nil arguments are
// skipped. Inputs are never mutated.
func Merge(bags ...Attrs) Attrs {
	out := Attrs{}
	for _, b := range bags {
		mergeInto(out, b)
	}
	return out
}

func mergeInto(dst, src Attrs) {
	for k, v := range src {
		if sub, ok := asAttrs(v); ok {
			if cur, ok := asAttrs(dst[k]); ok {
				// cur is always a copy made by an earlier mergeInto.
				mergeInto(cur, sub)
				continue
			}
			cp := Attrs{}
			mergeInto(cp, sub)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}

// mergeAny is Merge for values of unknown shape. Non-mapping values are
// ignored.
func mergeAny(vals ...any) Attrs {
	bags := make([]Attrs, 0, len(vals))
	for _, v := range vals {
		if m, ok := asAttrs(v); ok {
			bags = append(bags, m)
		}
	}
	return Merge(bags...)
}
