package tag

// MaxDepth is the deepest container nesting written into a tree.
const MaxDepth = 512

// IsTooDeep reports whether t, placed depth levels below the root,
// reaches MaxDepth anywhere inside it. Each compound or list level adds
// one to the depth.
func IsTooDeep(t *Tag, depth int) bool {
	if depth >= MaxDepth {
		return true
	}
	if t == nil {
		return false
	}
	switch t.Type {
	case CompoundType, ListType:
		for _, v := range t.Values {
			if IsTooDeep(v, depth+1) {
				return true
			}
		}
	}
	return false
}

// Walk calls f on t and then on every descendant, depth first. When f
// returns false the children of that tag are skipped.
func (t *Tag) Walk(f func(t *Tag) bool) {
	if t == nil || !f(t) {
		return
	}
	for _, v := range t.Values {
		v.Walk(f)
	}
}
