package tag

import "math"

// Equal reports whether a and b are structurally equal: same type and
// value, compounds with the same fields regardless of order, collections
// with equal elements in the same order. Floats compare by bit pattern, so
// a NaN equals itself.
func Equal(a, b *Tag) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ByteType, ShortType, IntType, LongType:
		return a.Int == b.Int
	case FloatType, DoubleType:
		return math.Float64bits(a.Float) == math.Float64bits(b.Float)
	case StringType:
		return a.String == b.String
	case CompoundType:
		return equalCompounds(a, b)
	case ListType, ByteArrayType, IntArrayType, LongArrayType:
		return equalElements(a, b)
	}
	return true
}

func equalCompounds(a, b *Tag) bool {
	if len(a.Keys) != len(b.Keys) {
		return false
	}
	for i, k := range a.Keys {
		bv := b.Get(k)
		if bv == nil || !Equal(a.Values[i], bv) {
			return false
		}
	}
	return true
}

func equalElements(a, b *Tag) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

// Matches reports whether candidate matches pattern partially: a compound
// pattern matches a compound candidate having every pattern field with a
// matching value, extra candidate fields being ignored at any level. Any
// other pattern must be Equal to the candidate.
func Matches(pattern, candidate *Tag) bool {
	if pattern == nil {
		return true
	}
	if candidate == nil {
		return false
	}
	if pattern.Type != CompoundType {
		return Equal(pattern, candidate)
	}
	if candidate.Type != CompoundType {
		return false
	}
	for i, k := range pattern.Keys {
		if !Matches(pattern.Values[i], candidate.Get(k)) {
			return false
		}
	}
	return true
}
