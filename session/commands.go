package session

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/nbtpath"
	"github.com/signadot/nbtpath/parse"
	"github.com/signadot/nbtpath/tag"
	"github.com/signadot/nbtpath/token"
)

func readPath(r *token.Reader) (*nbtpath.Path, error) {
	p, err := nbtpath.ParseReader(r)
	if err != nil {
		return nil, err
	}
	r.SkipWhitespace()
	return p, nil
}

func readFloat(r *token.Reader) (float64, error) {
	at := r.Pos()
	s := r.ReadUnquoted()
	if s == "" {
		return 0, token.ExpectedErr("number", at)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, token.NewSyntaxErr(fmt.Errorf("%w %q", token.ErrBadNumber, s), at)
	}
	r.SkipWhitespace()
	return f, nil
}

func readVec3(r *token.Reader) (mgl64.Vec3, error) {
	var v mgl64.Vec3
	for i := range v {
		f, err := readFloat(r)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

func readWord(r *token.Reader, what string) (string, *token.Pos, error) {
	at := r.Pos()
	w := r.ReadUnquoted()
	if w == "" {
		return "", at, token.ExpectedErr(what, at)
	}
	r.SkipWhitespace()
	return w, at, nil
}

func (s *Session) single(p *nbtpath.Path) (*tag.Tag, error) {
	vs, err := p.Get(s.Root)
	if err != nil {
		return nil, err
	}
	if len(vs) != 1 {
		return nil, fmt.Errorf("%w: %q selects %d", ErrMultipleTags, p, len(vs))
	}
	return vs[0], nil
}

// size is the result of get without a scale.
func size(t *tag.Tag) int {
	switch {
	case t.Type.IsNumeric():
		return int(math.Floor(t.AsFloat()))
	case t.Type == tag.StringType:
		return len(t.String)
	}
	return t.Len()
}

func (s *Session) get(r *token.Reader) (*Result, error) {
	p, err := readPath(r)
	if err != nil {
		return nil, err
	}
	scale, scaled := 0.0, r.CanRead()
	if scaled {
		if scale, err = readFloat(r); err != nil {
			return nil, err
		}
	}
	if err := end(r); err != nil {
		return nil, err
	}
	v, err := s.single(p)
	if err != nil {
		return nil, err
	}
	if !scaled {
		return &Result{Count: size(v), Values: []*tag.Tag{v}, Text: encode.MustString(v)}, nil
	}
	if !v.Type.IsNumeric() {
		return nil, fmt.Errorf("%w: %q is %s", ErrNotNumeric, p, v.Type)
	}
	n := int(math.Floor(v.AsFloat() * scale))
	return &Result{Count: n, Values: []*tag.Tag{v}, Text: strconv.Itoa(n)}, nil
}

func (s *Session) count(r *token.Reader) (*Result, error) {
	p, err := readPath(r)
	if err != nil {
		return nil, err
	}
	if err := end(r); err != nil {
		return nil, err
	}
	n := p.CountMatching(s.Root)
	return &Result{Count: n, Text: strconv.Itoa(n)}, nil
}

func (s *Session) remove(r *token.Reader) (*Result, error) {
	p, err := readPath(r)
	if err != nil {
		return nil, err
	}
	if err := end(r); err != nil {
		return nil, err
	}
	return changed(p.Remove(s.Root))
}

func (s *Session) merge(r *token.Reader) (*Result, error) {
	src, err := parse.ParseCompound(r)
	if err != nil {
		return nil, err
	}
	if err := end(r); err != nil {
		return nil, err
	}
	if !s.Root.IsCompound() {
		return nil, fmt.Errorf("%w: root is %s", ErrMergeTarget, s.Root.Type)
	}
	return changed(mergeInto([]*tag.Tag{s.Root}, src))
}

// mergeInto merges src into every target and returns how many changed.
func mergeInto(targets []*tag.Tag, src *tag.Tag) int {
	n := 0
	for _, t := range targets {
		before := t.Clone()
		t.Merge(src)
		if !tag.Equal(before, t) {
			n++
		}
	}
	return n
}

// sources reads the values of a modify command: "value" followed by one
// or more SNBT literals, or "from" followed by a path into the root. The
// result never shares tags with the root.
func (s *Session) sources(r *token.Reader, many bool) ([]*tag.Tag, error) {
	kind, at, err := readWord(r, "value or from")
	if err != nil {
		return nil, err
	}
	var res []*tag.Tag
	switch kind {
	case "value":
		for {
			v, err := parse.ParseValue(r)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
			r.SkipWhitespace()
			if !many || !r.CanRead() {
				break
			}
		}
	case "from":
		p, err := readPath(r)
		if err != nil {
			return nil, err
		}
		vs, err := p.Get(s.Root)
		if err != nil {
			return nil, err
		}
		for _, v := range vs {
			res = append(res, v.Clone())
		}
	default:
		return nil, token.ExpectedErr("value or from", at)
	}
	return res, end(r)
}

func (s *Session) modify(r *token.Reader) (*Result, error) {
	p, err := readPath(r)
	if err != nil {
		return nil, err
	}
	op, at, err := readWord(r, "modify operation")
	if err != nil {
		return nil, err
	}
	switch op {
	case "set":
		vs, err := s.sources(r, false)
		if err != nil {
			return nil, err
		}
		n, err := p.Set(s.Root, vs[len(vs)-1])
		if err != nil {
			return nil, err
		}
		return changed(n)
	case "merge":
		vs, err := s.sources(r, false)
		if err != nil {
			return nil, err
		}
		src := tag.NewCompound()
		for _, v := range vs {
			if !v.IsCompound() {
				return nil, fmt.Errorf("%w: merge source is %s", ErrMergeTarget, v.Type)
			}
			src.Merge(v)
		}
		targets, err := p.GetOrCreate(s.Root, tag.NewCompound)
		if err != nil {
			return nil, err
		}
		for _, t := range targets {
			if !t.IsCompound() {
				return nil, fmt.Errorf("%w: %q is %s", ErrMergeTarget, p, t.Type)
			}
		}
		return changed(mergeInto(targets, src))
	case "append", "prepend", "insert":
		index := -1
		switch op {
		case "prepend":
			index = 0
		case "insert":
			if index, err = r.ReadInt(); err != nil {
				return nil, err
			}
			r.SkipWhitespace()
		}
		vs, err := s.sources(r, true)
		if err != nil {
			return nil, err
		}
		n, err := p.Insert(s.Root, index, vs)
		if err != nil {
			return nil, err
		}
		return changed(n)
	}
	return nil, token.ExpectedErr("set, merge, append, prepend or insert", at)
}

func (s *Session) uuid(r *token.Reader) (*Result, error) {
	p, err := readPath(r)
	if err != nil {
		return nil, err
	}
	if !r.CanRead() {
		v, err := s.single(p)
		if err != nil {
			return nil, err
		}
		u, err := v.AsUUID()
		if err != nil {
			return nil, err
		}
		return &Result{Count: 1, Values: []*tag.Tag{v}, Text: u.String()}, nil
	}
	at := r.Pos()
	w := r.ReadUntil(' ')
	u, err := uuid.Parse(w)
	if err != nil {
		return nil, token.NewSyntaxErr(fmt.Errorf("%w: %w", tag.ErrNotUUID, err), at)
	}
	if err := end(r); err != nil {
		return nil, err
	}
	n, err := p.Set(s.Root, tag.UUID(u))
	if err != nil {
		return nil, err
	}
	return changed(n)
}

func (s *Session) pos(r *token.Reader) (*Result, error) {
	p, err := readPath(r)
	if err != nil {
		return nil, err
	}
	v, err := readVec3(r)
	if err != nil {
		return nil, err
	}
	if err := end(r); err != nil {
		return nil, err
	}
	n, err := p.Set(s.Root, tag.Vec3(v))
	if err != nil {
		return nil, err
	}
	return changed(n)
}

func (s *Session) move(r *token.Reader) (*Result, error) {
	p, err := readPath(r)
	if err != nil {
		return nil, err
	}
	d, err := readVec3(r)
	if err != nil {
		return nil, err
	}
	if err := end(r); err != nil {
		return nil, err
	}
	cur, err := s.single(p)
	if err != nil {
		return nil, err
	}
	v, err := cur.AsVec3()
	if err != nil {
		return nil, err
	}
	next := tag.Vec3(v.Add(d))
	n, err := p.Set(s.Root, next)
	if err != nil {
		return nil, err
	}
	if _, err := changed(n); err != nil {
		return nil, err
	}
	return &Result{Count: n, Values: []*tag.Tag{next}, Text: encode.MustString(next)}, nil
}
