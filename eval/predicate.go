package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/nbtpath/debug"
	"github.com/signadot/nbtpath/tag"
)

// Predicate is a compiled boolean expression over a tag.
type Predicate struct {
	src     string
	program *vm.Program
}

// Compile compiles src, an expr-lang expression which must evaluate to a
// bool. See Env for the names it can use.
func Compile(src string) (*Predicate, error) {
	opts := append([]expr.Option{expr.Env(Env{}), expr.AsBool()}, exprOpts()...)
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return &Predicate{src: src, program: program}, nil
}

func (p *Predicate) String() string { return p.src }

// Match evaluates p against t.
func (p *Predicate) Match(t *tag.Tag) (bool, error) {
	res, err := vm.Run(p.program, NewEnv(t))
	if err != nil {
		return false, fmt.Errorf("eval %q: %w", p.src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("eval %q: result %T is not a bool", p.src, res)
	}
	if debug.Path() {
		debug.Logf("where %q on %v: %t\n", p.src, t, b)
	}
	return b, nil
}

// Filter returns the tags of ts matching p.
func (p *Predicate) Filter(ts []*tag.Tag) ([]*tag.Tag, error) {
	var res []*tag.Tag
	for _, t := range ts {
		ok, err := p.Match(t)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, t)
		}
	}
	return res, nil
}
