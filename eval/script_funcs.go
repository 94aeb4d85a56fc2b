package eval

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/signadot/nbtpath/tag"
)

var (
	uuidSym = &funcSymbol{
		name:     "uuid",
		synopsis: "uuid(value) string: an int array uuid as text",
		fn:       uuidText,
		types:    []any{new(func(any) string)},
	}
	isUUIDSym = &funcSymbol{
		name:     "isuuid",
		synopsis: "isuuid(s) bool: whether s is a uuid in text form",
		fn:       isUUID,
		types:    []any{new(func(string) bool)},
	}
)

func UUID() Symbol   { return uuidSym }
func IsUUID() Symbol { return isUUIDSym }

func uuidText(params ...any) (any, error) {
	t, err := uuidArg(params[0])
	if err != nil {
		return nil, err
	}
	u, err := t.AsUUID()
	if err != nil {
		return nil, err
	}
	return u.String(), nil
}

func isUUID(params ...any) (any, error) {
	_, err := uuid.Parse(params[0].(string))
	return err == nil, nil
}

// uuidArg turns the plain form of an int array, four int64 values, back
// into an int array.
func uuidArg(v any) (*tag.Tag, error) {
	xs, ok := v.([]any)
	if !ok || len(xs) != 4 {
		return tag.FromAny(v)
	}
	ws := make([]int32, len(xs))
	for i, x := range xs {
		n, ok := x.(int64)
		if !ok {
			return nil, fmt.Errorf("%w: element %d is %T", tag.ErrNotUUID, i, x)
		}
		ws[i] = int32(n)
	}
	return tag.IntArray(ws...), nil
}
