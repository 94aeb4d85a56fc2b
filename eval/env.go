package eval

import (
	"github.com/signadot/nbtpath/nbtpath"
	"github.com/signadot/nbtpath/tag"
)

// Env is the environment of a Predicate evaluated against one tag.
//
//	value        the tag as plain values: numbers, strings, lists, maps
//	type         the tag type name, "int", "compound", ...
//	getpath(p)   the first tag selected by NBT path p, or nil
//	listpath(p)  all tags selected by p
//	count(p)     the number of tags selected by p
type Env struct {
	Value    any                         `expr:"value"`
	Type     string                      `expr:"type"`
	GetPath  func(string) (any, error)   `expr:"getpath"`
	ListPath func(string) ([]any, error) `expr:"listpath"`
	Count    func(string) (int, error)   `expr:"count"`
}

func NewEnv(t *tag.Tag) Env {
	env := Env{Value: tag.ToAny(t)}
	if t != nil {
		env.Type = t.Type.String()
	}
	env.GetPath = func(path string) (any, error) {
		p, err := nbtpath.Parse(path)
		if err != nil {
			return nil, err
		}
		res, err := p.Get(t)
		if err != nil {
			return nil, nil
		}
		return tag.ToAny(res[0]), nil
	}
	env.ListPath = func(path string) ([]any, error) {
		p, err := nbtpath.Parse(path)
		if err != nil {
			return nil, err
		}
		res, err := p.Get(t)
		if err != nil {
			return []any{}, nil
		}
		vs := make([]any, len(res))
		for i, r := range res {
			vs[i] = tag.ToAny(r)
		}
		return vs, nil
	}
	env.Count = func(path string) (int, error) {
		p, err := nbtpath.Parse(path)
		if err != nil {
			return 0, err
		}
		return p.CountMatching(t), nil
	}
	return env
}
