package nbtpath

import (
	"fmt"

	"github.com/signadot/nbtpath/debug"
	"github.com/signadot/nbtpath/parse"
	"github.com/signadot/nbtpath/token"
)

// Parse parses a complete path. A path ends at the first space, so
// anything but spaces after it is an error.
func Parse(s string) (*Path, error) {
	r := token.NewReader(s)
	p, err := ParseReader(r)
	if err != nil {
		return nil, err
	}
	r.SkipWhitespace()
	if r.CanRead() {
		return nil, token.UnexpectedErr(fmt.Sprintf("%q after path", r.Remaining()), r.Pos())
	}
	return p, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseReader parses a path at the cursor of r, stopping at the end of
// input or at a space. The cursor is left on the terminator, so a path can
// be one argument of a longer command line.
func ParseReader(r *token.Reader) (*Path, error) {
	start := r.Cursor()
	p := &Path{}
	for r.CanRead() && r.Peek() != ' ' {
		n, err := parseNode(r, len(p.nodes) == 0)
		if err != nil {
			return nil, err
		}
		p.nodes = append(p.nodes, n)
		p.ends = append(p.ends, r.Cursor()-start)
		if !r.CanRead() {
			break
		}
		switch r.Peek() {
		case ' ', '[', '{':
		case '.':
			r.Skip()
		default:
			return nil, invalidNode(r, "expected '.'")
		}
	}
	p.original = r.Input()[start:r.Cursor()]
	if debug.Path() {
		debug.Logf("parsed path %q: %v\n", p.original, p.nodes)
	}
	return p, nil
}

func invalidNode(r *token.Reader, msg string) error {
	return token.NewSyntaxErr(fmt.Errorf("%w: %s", ErrInvalidNode, msg), r.Pos())
}

func parseNode(r *token.Reader, first bool) (Node, error) {
	switch r.Peek() {
	case '{':
		if !first {
			return nil, invalidNode(r, "filter must follow a name or '['")
		}
		filter, err := parse.ParseCompound(r)
		if err != nil {
			return nil, err
		}
		return MatchRootObject{Filter: filter}, nil
	case '[':
		r.Skip()
		if !r.CanRead() {
			return nil, token.ExpectedErr("index, filter or ']'", r.Pos())
		}
		switch r.Peek() {
		case '{':
			filter, err := parse.ParseCompound(r)
			if err != nil {
				return nil, err
			}
			if err := r.Expect(']'); err != nil {
				return nil, err
			}
			return MatchElement{Filter: filter}, nil
		case ']':
			r.Skip()
			return AllElements{}, nil
		}
		i, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		if err := r.Expect(']'); err != nil {
			return nil, err
		}
		return IndexedElement{Index: i}, nil
	case '"', '\'':
		name, err := r.ReadQuoted()
		if err != nil {
			return nil, err
		}
		return objectNode(r, name)
	}
	start := r.Cursor()
	for r.CanRead() && isNameChar(r.Peek()) {
		r.Skip()
	}
	if r.Cursor() == start {
		return nil, invalidNode(r, "expected name")
	}
	return objectNode(r, r.Input()[start:r.Cursor()])
}

func objectNode(r *token.Reader, name string) (Node, error) {
	if !r.CanRead() || r.Peek() != '{' {
		return CompoundChild{Name: name}, nil
	}
	filter, err := parse.ParseCompound(r)
	if err != nil {
		return nil, err
	}
	return MatchObject{Name: name, Filter: filter}, nil
}
