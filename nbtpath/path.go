package nbtpath

import (
	"slices"
	"strings"

	"github.com/signadot/nbtpath/debug"
	"github.com/signadot/nbtpath/tag"
)

// Path is a parsed NBT path. It holds no tree state and may be applied to
// any number of trees. Operations that modify a tree expect exclusive
// access to it for the duration of the call.
type Path struct {
	original string
	nodes    []Node
	// ends[i] is the offset in original where nodes[i] ends.
	ends []int
}

// New builds a path from nodes, rendering its text from the nodes.
// MatchRootObject is only meaningful as the first node.
func New(nodes ...Node) *Path {
	p := &Path{nodes: slices.Clone(nodes)}
	b := &strings.Builder{}
	for i, n := range nodes {
		s := n.String()
		if i != 0 && !strings.HasPrefix(s, "[") {
			b.WriteByte('.')
		}
		b.WriteString(s)
		p.ends = append(p.ends, b.Len())
	}
	p.original = b.String()
	return p
}

// String returns the path text as it was parsed.
func (p *Path) String() string { return p.original }

// Len returns the length of the path text.
func (p *Path) Len() int { return len(p.original) }

func (p *Path) Nodes() []Node { return slices.Clone(p.nodes) }

func (p *Path) MarshalText() ([]byte, error) {
	return []byte(p.original), nil
}

func (p *Path) UnmarshalText(d []byte) error {
	q, err := Parse(string(d))
	if err != nil {
		return err
	}
	*p = *q
	return nil
}

func (p *Path) notFound(i int) error {
	prefix := ""
	if i > 0 {
		prefix = p.original[:p.ends[i-1]]
	}
	if debug.Path() {
		debug.Logf("path %q: nothing found after %q\n", p.original, prefix)
	}
	return &NotFoundErr{Prefix: prefix}
}

func readAll(n Node, in []*tag.Tag) []*tag.Tag {
	var out []*tag.Tag
	for _, t := range in {
		out = n.read(t, out)
	}
	return out
}

// Get returns the tags selected by p in root. It returns a *NotFoundErr
// when some step selects nothing.
func (p *Path) Get(root *tag.Tag) ([]*tag.Tag, error) {
	res := []*tag.Tag{root}
	for i, n := range p.nodes {
		res = readAll(n, res)
		if len(res) == 0 {
			return nil, p.notFound(i)
		}
	}
	return res, nil
}

// CountMatching returns the number of tags selected by p in root.
func (p *Path) CountMatching(root *tag.Tag) int {
	res := []*tag.Tag{root}
	for _, n := range p.nodes {
		res = readAll(n, res)
		if len(res) == 0 {
			return 0
		}
	}
	return len(res)
}

// parents selects the containers of the last node, creating missing
// containers on the way in the shape the following node expects.
func (p *Path) parents(root *tag.Tag) ([]*tag.Tag, error) {
	res := []*tag.Tag{root}
	for i := 0; i < len(p.nodes)-1; i++ {
		n, next := p.nodes[i], p.nodes[i+1]
		var out []*tag.Tag
		for _, t := range res {
			out = n.readOrCreate(t, next.preferredParent, out)
		}
		if len(out) == 0 {
			return nil, p.notFound(i)
		}
		res = out
	}
	return res, nil
}

// GetOrCreate is like Get but creates missing tags. Missing containers
// along the path get the shape the path expects there and a missing final
// tag is made by mk. Index steps never create anything.
func (p *Path) GetOrCreate(root *tag.Tag, mk func() *tag.Tag) ([]*tag.Tag, error) {
	if len(p.nodes) == 0 {
		return []*tag.Tag{root}, nil
	}
	parents, err := p.parents(root)
	if err != nil {
		return nil, err
	}
	last := p.nodes[len(p.nodes)-1]
	var res []*tag.Tag
	for _, t := range parents {
		res = last.readOrCreate(t, mk, res)
	}
	return res, nil
}

// copier returns a func whose first call returns v and whose later calls
// return fresh copies of it.
func copier(v *tag.Tag) func() *tag.Tag {
	used := false
	return func() *tag.Tag {
		if !used {
			used = true
			return v
		}
		return v.Clone()
	}
}

// Set writes a copy of v to every position selected by p in root, creating
// missing containers along the way, and returns the number of positions
// that changed. No two positions share a tag. Set fails with
// ErrDataTooDeep, before touching root, when v would nest too deep.
func (p *Path) Set(root, v *tag.Tag) (int, error) {
	if tag.IsTooDeep(v, len(p.nodes)) {
		return 0, ErrDataTooDeep
	}
	if len(p.nodes) == 0 {
		return 0, nil
	}
	mk := copier(v.Clone())
	parents, err := p.parents(root)
	if err != nil {
		return 0, err
	}
	last := p.nodes[len(p.nodes)-1]
	n := 0
	for _, t := range parents {
		n += last.write(t, mk)
	}
	if debug.Path() {
		debug.Logf("path %q set %v: %d changed\n", p.original, v, n)
	}
	return n, nil
}

// Remove deletes every position selected by p in root and returns how
// many were removed. Missing containers are never created.
func (p *Path) Remove(root *tag.Tag) int {
	if len(p.nodes) == 0 {
		return 0
	}
	res := []*tag.Tag{root}
	for _, n := range p.nodes[:len(p.nodes)-1] {
		res = readAll(n, res)
	}
	last := p.nodes[len(p.nodes)-1]
	n := 0
	for _, t := range res {
		n += last.delete(t)
	}
	if debug.Path() {
		debug.Logf("path %q remove: %d removed\n", p.original, n)
	}
	return n
}

// Insert inserts copies of elems, in order, into every list or array
// selected by p in root, starting at index. A negative index counts from
// the end, -1 appending. Missing destinations are created as empty lists.
//
// Insert returns the number of destinations that received at least one
// element. Elements an array cannot hold are skipped. A destination that
// is not a list or array fails with *ExpectedListErr and an index outside
// of a destination with *InvalidIndexErr.
func (p *Path) Insert(root *tag.Tag, index int, elems []*tag.Tag) (int, error) {
	copies := make([]*tag.Tag, len(elems))
	for i, e := range elems {
		copies[i] = e.Clone()
		if tag.IsTooDeep(copies[i], len(p.nodes)) {
			return 0, ErrDataTooDeep
		}
	}
	dests, err := p.GetOrCreate(root, func() *tag.Tag { return tag.NewList() })
	if err != nil {
		return 0, err
	}
	n := 0
	used := false
	for _, d := range dests {
		if !d.IsCollection() {
			return n, &ExpectedListErr{Got: d}
		}
		k := index
		if k < 0 {
			k = d.Len() + index + 1
		}
		changed := false
		for _, e := range copies {
			if used {
				e = e.Clone()
			}
			ok, err := d.InsertAt(k, e)
			if err != nil {
				return n, &InvalidIndexErr{Index: k}
			}
			if ok {
				k++
				changed = true
			}
		}
		used = true
		if changed {
			n++
		}
	}
	if debug.Path() {
		debug.Logf("path %q insert at %d: %d destinations\n", p.original, index, n)
	}
	return n, nil
}
