package libdiff

import (
	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/nbtpath"
	"github.com/signadot/nbtpath/tag"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex aligns the elements of two lists or arrays:
//
//  1. every element is summarized as a rune: scalars by type and value,
//     containers by type only
//  2. the rune sequences are diffed
//  3. equal containers are diffed recursively
//  4. deleted and inserted elements become changes at the running index,
//     a delete directly followed by an insert becoming a replace
//
// The running index counts the elements already in place, so the changes
// apply in order.
func DiffArrayByIndex(at []nbtpath.Node, from, to *tag.Tag, res []Change) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	elem := func(i int) []nbtpath.Node {
		return append(at[:len(at):len(at)], nbtpath.IndexedElement{Index: i})
	}
	fi, ti, ri := 0, 0, 0
	lastDel := -1
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, MakeChange(elem(ri), from.Values[fi], nil))
				lastDel = len(res) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			lastDel = -1
			for range n {
				res = diff(elem(ri), from.Values[fi], to.Values[ti], res)
				ri++
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if lastDel != -1 {
					del := res[lastDel]
					res[lastDel] = MakeChange(del.Path.Nodes(), del.From, to.Values[ti].Clone())
				} else {
					res = append(res, MakeChange(elem(ri), nil, to.Values[ti].Clone()))
				}
				lastDel = -1
				ri++
				ti++
			}
		}
	}
	return res
}

func mapValues(m map[string]rune, t *tag.Tag) []rune {
	rs := make([]rune, len(t.Values))
	for i, v := range t.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(t *tag.Tag) string {
	switch t.Type {
	case tag.CompoundType, tag.ListType, tag.ByteArrayType, tag.IntArrayType, tag.LongArrayType:
		return t.Type.String()
	}
	return t.Type.String() + "-" + encode.MustString(t)
}
