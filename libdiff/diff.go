package libdiff

import (
	"github.com/signadot/nbtpath/nbtpath"
	"github.com/signadot/nbtpath/tag"
)

// Diff returns the changes turning from into to, in the order Apply must
// perform them. Compounds are compared field by field, lists and arrays
// by aligning their elements, and anything else is replaced whole.
func Diff(from, to *tag.Tag) []Change {
	return diff(nil, from, to, nil)
}

func diff(at []nbtpath.Node, from, to *tag.Tag, res []Change) []Change {
	if from.Type != to.Type {
		return append(res, MakeChange(at, from, to))
	}
	switch {
	case from.IsCompound():
		return DiffCompound(at, from, to, res)
	case from.IsCollection():
		return DiffArrayByIndex(at, from, to, res)
	}
	if tag.Equal(from, to) {
		return res
	}
	return append(res, MakeChange(at, from, to))
}

// DiffCompound removes the fields only in from, descends into the fields
// in both and adds the fields only in to.
func DiffCompound(at []nbtpath.Node, from, to *tag.Tag, res []Change) []Change {
	for i, k := range from.Keys {
		fv := from.Values[i]
		tv := to.Get(k)
		child := append(at[:len(at):len(at)], nbtpath.CompoundChild{Name: k})
		if tv == nil {
			res = append(res, MakeChange(child, fv, nil))
			continue
		}
		res = diff(child, fv, tv, res)
	}
	for i, k := range to.Keys {
		if from.Contains(k) {
			continue
		}
		child := append(at[:len(at):len(at)], nbtpath.CompoundChild{Name: k})
		res = append(res, MakeChange(child, nil, to.Values[i].Clone()))
	}
	return res
}
