package eval

import (
	"fmt"

	"github.com/signadot/nbtpath/parse"
	"github.com/signadot/nbtpath/tag"
)

var toValueSym = &funcSymbol{
	name:     toValueName,
	synopsis: "tovalue(snbt) any: the plain value of an snbt literal",
	fn:       toValue,
	types:    []any{new(func(string) any)},
}

func ToValue() Symbol {
	return toValueSym
}

const (
	toValueName name = "tovalue"
)

func toValue(params ...any) (any, error) {
	t, err := parse.Parse(params[0].(string))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", toValueName, err)
	}
	return tag.ToAny(t), nil
}
