package tag

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrNotVec3 = errors.New("not a 3 element numeric list")

// Vec3 encodes v as a list of three doubles, the layout of entity Pos and
// Motion fields.
func Vec3(v mgl64.Vec3) *Tag {
	return NewList(Double(v[0]), Double(v[1]), Double(v[2]))
}

func (t *Tag) AsVec3() (mgl64.Vec3, error) {
	var v mgl64.Vec3
	if !t.IsCollection() || len(t.Values) != 3 {
		return v, ErrNotVec3
	}
	for i, e := range t.Values {
		if !e.Type.IsNumeric() {
			return v, fmt.Errorf("%w: element %d is %s", ErrNotVec3, i, e.Type)
		}
		v[i] = e.AsFloat()
	}
	return v, nil
}
