package parse

import "github.com/signadot/nbtpath/tag"

type parseOpts struct {
	maxDepth int
	depth    int
}

type ParseOption func(*parseOpts)

// MaxDepth bounds the nesting of compounds and lists in a literal.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

func newOpts(opts []ParseOption) *parseOpts {
	pOpts := &parseOpts{maxDepth: tag.MaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts
}
