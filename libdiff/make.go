package libdiff

import (
	"strings"

	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/nbtpath"
	"github.com/signadot/nbtpath/tag"
)

// Change is one edit of a tree. From is nil for an Insert and To is nil
// for a Delete.
type Change struct {
	Op   Op
	Path *nbtpath.Path
	From *tag.Tag
	To   *tag.Tag
}

func MakeChange(nodes []nbtpath.Node, from, to *tag.Tag) Change {
	c := Change{Path: nbtpath.New(nodes...), From: from, To: to}
	switch {
	case from == nil:
		c.Op = Insert
	case to == nil:
		c.Op = Delete
	default:
		c.Op = Replace
	}
	return c
}

func (c Change) String() string {
	b := &strings.Builder{}
	b.WriteString(c.Op.String())
	b.WriteByte(' ')
	b.WriteString(c.Path.String())
	switch c.Op {
	case Insert:
		b.WriteByte(' ')
		b.WriteString(encode.MustString(c.To))
	case Delete:
		b.WriteByte(' ')
		b.WriteString(encode.MustString(c.From))
	case Replace:
		b.WriteByte(' ')
		b.WriteString(encode.MustString(c.From))
		b.WriteString(" -> ")
		b.WriteString(encode.MustString(c.To))
	}
	return b.String()
}
