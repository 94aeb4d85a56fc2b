package tag

import (
	"errors"
	"maps"
	"math"
	"slices"
)

// ErrIndexRange is returned by InsertAt when the insertion position lies
// outside [0, Len()].
var ErrIndexRange = errors.New("index out of range")

// Tag is a node in an NBT tree.
//
// Compounds keep their fields in Keys and Values (parallel, insertion
// ordered). Lists and typed arrays keep their elements in Values; array
// elements always carry the array's element type. Integral scalars use
// Int, Float and Double use Float, and String holds string payloads.
type Tag struct {
	Type   Type
	Keys   []string
	Values []*Tag

	Int    int64
	Float  float64
	String string
}

func Byte(v int8) *Tag {
	return &Tag{Type: ByteType, Int: int64(v)}
}

func Bool(v bool) *Tag {
	if v {
		return Byte(1)
	}
	return Byte(0)
}

func Short(v int16) *Tag {
	return &Tag{Type: ShortType, Int: int64(v)}
}

func Int(v int32) *Tag {
	return &Tag{Type: IntType, Int: int64(v)}
}

func Long(v int64) *Tag {
	return &Tag{Type: LongType, Int: v}
}

func Float(v float32) *Tag {
	return &Tag{Type: FloatType, Float: float64(v)}
}

func Double(v float64) *Tag {
	return &Tag{Type: DoubleType, Float: v}
}

func String(v string) *Tag {
	return &Tag{Type: StringType, String: v}
}

func NewCompound() *Tag {
	return &Tag{Type: CompoundType}
}

func NewList(elems ...*Tag) *Tag {
	return &Tag{Type: ListType, Values: elems}
}

func ByteArray(vs ...int8) *Tag {
	res := &Tag{Type: ByteArrayType, Values: make([]*Tag, len(vs))}
	for i, v := range vs {
		res.Values[i] = Byte(v)
	}
	return res
}

func IntArray(vs ...int32) *Tag {
	res := &Tag{Type: IntArrayType, Values: make([]*Tag, len(vs))}
	for i, v := range vs {
		res.Values[i] = Int(v)
	}
	return res
}

func LongArray(vs ...int64) *Tag {
	res := &Tag{Type: LongArrayType, Values: make([]*Tag, len(vs))}
	for i, v := range vs {
		res.Values[i] = Long(v)
	}
	return res
}

// FromMap builds a compound from m with keys in sorted order.
func FromMap(m map[string]*Tag) *Tag {
	res := NewCompound()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		res.Put(k, m[k])
	}
	return res
}

// KeyVal is a single compound field, used to build compounds with a
// fixed field order.
type KeyVal struct {
	Key string
	Val *Tag
}

func FromKeyVals(kvs ...KeyVal) *Tag {
	res := NewCompound()
	for _, kv := range kvs {
		res.Put(kv.Key, kv.Val)
	}
	return res
}

func (t *Tag) IsCompound() bool {
	return t != nil && t.Type == CompoundType
}

func (t *Tag) IsList() bool {
	return t != nil && t.Type == ListType
}

func (t *Tag) IsCollection() bool {
	return t != nil && t.Type.IsCollection()
}

// Len returns the number of fields of a compound or elements of a
// collection, and 0 for anything else.
func (t *Tag) Len() int {
	if t == nil {
		return 0
	}
	switch {
	case t.Type == CompoundType:
		return len(t.Keys)
	case t.Type.IsCollection():
		return len(t.Values)
	}
	return 0
}

func (t *Tag) keyIndex(key string) int {
	if t == nil || t.Type != CompoundType {
		return -1
	}
	return slices.Index(t.Keys, key)
}

// Get returns the field key of a compound, or nil.
func (t *Tag) Get(key string) *Tag {
	i := t.keyIndex(key)
	if i < 0 {
		return nil
	}
	return t.Values[i]
}

func (t *Tag) Contains(key string) bool {
	return t.keyIndex(key) >= 0
}

// Put sets field key of a compound to v and returns the previous value,
// if any. Put on a non-compound does nothing.
func (t *Tag) Put(key string, v *Tag) *Tag {
	if t == nil || t.Type != CompoundType {
		return nil
	}
	i := t.keyIndex(key)
	if i < 0 {
		t.Keys = append(t.Keys, key)
		t.Values = append(t.Values, v)
		return nil
	}
	old := t.Values[i]
	t.Values[i] = v
	return old
}

// Remove deletes field key of a compound and returns its value, if any.
func (t *Tag) Remove(key string) *Tag {
	i := t.keyIndex(key)
	if i < 0 {
		return nil
	}
	old := t.Values[i]
	t.Keys = slices.Delete(t.Keys, i, i+1)
	t.Values = slices.Delete(t.Values, i, i+1)
	return old
}

// Index returns element i of a collection, or nil when out of range.
func (t *Tag) Index(i int) *Tag {
	if !t.IsCollection() || i < 0 || i >= len(t.Values) {
		return nil
	}
	return t.Values[i]
}

// storable returns the value to store in collection t for v, and whether
// v may be stored at all. Arrays take numeric values converted to their
// element type; lists take anything.
func (t *Tag) storable(v *Tag) (*Tag, bool) {
	if v == nil {
		return nil, false
	}
	if t.Type == ListType {
		return v, true
	}
	et := t.Type.ElemType()
	if et == EndType || !v.Type.IsNumeric() {
		return nil, false
	}
	if v.Type == et {
		return v, true
	}
	return convertIntegral(v.AsInt(), et), true
}

func convertIntegral(i int64, et Type) *Tag {
	switch et {
	case ByteType:
		return Byte(int8(i))
	case IntType:
		return Int(int32(i))
	default:
		return Long(i)
	}
}

// SetAt replaces element i of a collection. It reports false when i is out
// of range or v cannot be stored in t.
func (t *Tag) SetAt(i int, v *Tag) bool {
	if !t.IsCollection() || i < 0 || i >= len(t.Values) {
		return false
	}
	sv, ok := t.storable(v)
	if !ok {
		return false
	}
	t.Values[i] = sv
	return true
}

// InsertAt inserts v before element i of a collection, i == Len()
// appending. It reports false when v cannot be stored in t and returns
// ErrIndexRange when i is outside [0, Len()].
func (t *Tag) InsertAt(i int, v *Tag) (bool, error) {
	if !t.IsCollection() {
		return false, nil
	}
	sv, ok := t.storable(v)
	if !ok {
		return false, nil
	}
	if i < 0 || i > len(t.Values) {
		return false, ErrIndexRange
	}
	t.Values = slices.Insert(t.Values, i, sv)
	return true, nil
}

func (t *Tag) Append(v *Tag) bool {
	ok, _ := t.InsertAt(t.Len(), v)
	return ok
}

// RemoveAt deletes element i of a collection and returns it.
func (t *Tag) RemoveAt(i int) *Tag {
	if !t.IsCollection() || i < 0 || i >= len(t.Values) {
		return nil
	}
	old := t.Values[i]
	t.Values = slices.Delete(t.Values, i, i+1)
	return old
}

// Clear removes all fields or elements.
func (t *Tag) Clear() {
	if t == nil {
		return
	}
	t.Keys = nil
	t.Values = nil
}

// Accepts reports whether collection t could store v.
func (t *Tag) Accepts(v *Tag) bool {
	if !t.IsCollection() {
		return false
	}
	_, ok := t.storable(v)
	return ok
}

// AsInt returns a numeric tag's value as an integer, flooring floats.
func (t *Tag) AsInt() int64 {
	switch {
	case t.Type.IsIntegral():
		return t.Int
	case t.Type == FloatType || t.Type == DoubleType:
		return int64(math.Floor(t.Float))
	}
	return 0
}

// AsFloat returns a numeric tag's value as a float64.
func (t *Tag) AsFloat() float64 {
	switch {
	case t.Type.IsIntegral():
		return float64(t.Int)
	case t.Type == FloatType || t.Type == DoubleType:
		return t.Float
	}
	return 0
}

// Clone returns a deep copy of t.
func (t *Tag) Clone() *Tag {
	if t == nil {
		return nil
	}
	res := &Tag{
		Type:   t.Type,
		Int:    t.Int,
		Float:  t.Float,
		String: t.String,
	}
	if t.Keys != nil {
		res.Keys = slices.Clone(t.Keys)
	}
	if t.Values != nil {
		res.Values = make([]*Tag, len(t.Values))
		for i, v := range t.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Merge deeply merges the fields of compound src into compound t: nested
// compounds present on both sides are merged, every other field of src
// replaces the one in t with a copy.
func (t *Tag) Merge(src *Tag) *Tag {
	if !t.IsCompound() || !src.IsCompound() {
		return t
	}
	for i, k := range src.Keys {
		sv := src.Values[i]
		if sv.IsCompound() {
			if dv := t.Get(k); dv.IsCompound() {
				dv.Merge(sv)
				continue
			}
		}
		t.Put(k, sv.Clone())
	}
	return t
}
