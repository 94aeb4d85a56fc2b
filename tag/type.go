package tag

import "fmt"

// Type is the NBT type id of a tag.
type Type int

const (
	EndType Type = iota
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	ByteArrayType
	StringType
	ListType
	CompoundType
	IntArrayType
	LongArrayType
)

var typeNames = map[Type]string{
	EndType:       "End",
	ByteType:      "Byte",
	ShortType:     "Short",
	IntType:       "Int",
	LongType:      "Long",
	FloatType:     "Float",
	DoubleType:    "Double",
	ByteArrayType: "ByteArray",
	StringType:    "String",
	ListType:      "List",
	CompoundType:  "Compound",
	IntArrayType:  "IntArray",
	LongArrayType: "LongArray",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		EndType,
		ByteType,
		ShortType,
		IntType,
		LongType,
		FloatType,
		DoubleType,
		ByteArrayType,
		StringType,
		ListType,
		CompoundType,
		IntArrayType,
		LongArrayType,
	}
}

func (t Type) IsNumeric() bool {
	switch t {
	case ByteType, ShortType, IntType, LongType, FloatType, DoubleType:
		return true
	default:
		return false
	}
}

func (t Type) IsIntegral() bool {
	switch t {
	case ByteType, ShortType, IntType, LongType:
		return true
	default:
		return false
	}
}

// IsCollection reports whether tags of type t hold indexed elements:
// lists and the three typed arrays.
func (t Type) IsCollection() bool {
	switch t {
	case ListType, ByteArrayType, IntArrayType, LongArrayType:
		return true
	default:
		return false
	}
}

// ElemType returns the element type of a typed array, or EndType when t
// is not an array.
func (t Type) ElemType() Type {
	switch t {
	case ByteArrayType:
		return ByteType
	case IntArrayType:
		return IntType
	case LongArrayType:
		return LongType
	default:
		return EndType
	}
}
