package eval

import "github.com/expr-lang/expr"

// Symbol is a function predicates can call.
type Symbol interface {
	String() string
	Synopsis() string
	Option() expr.Option
}

type name string

func (s name) String() string {
	return string(s)
}

type funcSymbol struct {
	name
	synopsis string
	fn       func(params ...any) (any, error)
	types    []any
}

func (s *funcSymbol) Synopsis() string {
	return s.synopsis
}

func (s *funcSymbol) Option() expr.Option {
	return expr.Function(s.String(), s.fn, s.types...)
}
