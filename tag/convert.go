package tag

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
)

var ErrUnsupported = errors.New("unsupported value")

// FromAny converts decoded document values into a tag. It accepts the
// shapes produced by encoding/json, goccy/go-yaml and the binary NBT
// decoder: maps with string keys, slices, fixed size integer arrays,
// booleans, strings and Go numbers of any width.
func FromAny(v any) (*Tag, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null", ErrUnsupported)
	case *Tag:
		return x.Clone(), nil
	case bool:
		return Bool(x), nil
	case int8:
		return Byte(x), nil
	case uint8:
		return Byte(int8(x)), nil
	case int16:
		return Short(x), nil
	case uint16:
		return Int(int32(x)), nil
	case int32:
		return Int(x), nil
	case uint32:
		return Long(int64(x)), nil
	case int64:
		return Long(x), nil
	case uint64:
		return Long(int64(x)), nil
	case int:
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return Int(int32(x)), nil
		}
		return Long(int64(x)), nil
	case float32:
		return Float(x), nil
	case float64:
		return Double(x), nil
	case json.Number:
		return fromNumber(string(x))
	case string:
		return String(x), nil
	case []any:
		res := NewList()
		for i, e := range x {
			et, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			res.Values = append(res.Values, et)
		}
		return res, nil
	case map[string]any:
		res := NewCompound()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			vt, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", k, err)
			}
			res.Put(k, vt)
		}
		return res, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromNumber(s string) (*Tag, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return Int(int32(i)), nil
		}
		return Long(i), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: number %q", ErrUnsupported, s)
	}
	return Double(f), nil
}

func fromReflect(rv reflect.Value) (*Tag, error) {
	switch rv.Kind() {
	case reflect.Array:
		n := rv.Len()
		switch rv.Type().Elem().Kind() {
		case reflect.Uint8, reflect.Int8:
			res := ByteArray()
			for i := range n {
				res.Values = append(res.Values, Byte(int8(rv.Index(i).Convert(reflect.TypeOf(int64(0))).Int())))
			}
			return res, nil
		case reflect.Int32:
			res := IntArray()
			for i := range n {
				res.Values = append(res.Values, Int(int32(rv.Index(i).Int())))
			}
			return res, nil
		case reflect.Int64:
			res := LongArray()
			for i := range n {
				res.Values = append(res.Values, Long(rv.Index(i).Int()))
			}
			return res, nil
		}
		return fromSlice(rv)
	case reflect.Slice:
		return fromSlice(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return FromAny(m)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupported, rv.Interface())
}

func fromSlice(rv reflect.Value) (*Tag, error) {
	res := NewList()
	for i := range rv.Len() {
		et, err := FromAny(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		res.Values = append(res.Values, et)
	}
	return res, nil
}

// ToAny converts t into plain Go values suitable for JSON or YAML
// encoding and for expression environments: integral tags become int64,
// floating tags float64, collections []any and compounds map[string]any.
func ToAny(t *Tag) any {
	if t == nil {
		return nil
	}
	switch t.Type {
	case ByteType, ShortType, IntType, LongType:
		return t.Int
	case FloatType, DoubleType:
		return t.Float
	case StringType:
		return t.String
	case CompoundType:
		res := make(map[string]any, len(t.Keys))
		for i, k := range t.Keys {
			res[k] = ToAny(t.Values[i])
		}
		return res
	case ListType, ByteArrayType, IntArrayType, LongArrayType:
		res := make([]any, len(t.Values))
		for i, v := range t.Values {
			res[i] = ToAny(v)
		}
		return res
	}
	return nil
}

// ToNative converts t into Go values that keep NBT widths, the shape the
// binary NBT encoder expects: uint8, int16, int32, int64, float32,
// float64, string, []any, map[string]any and fixed size arrays for the
// typed arrays.
func ToNative(t *Tag) any {
	if t == nil {
		return nil
	}
	switch t.Type {
	case ByteType:
		return uint8(int8(t.Int))
	case ShortType:
		return int16(t.Int)
	case IntType:
		return int32(t.Int)
	case LongType:
		return t.Int
	case FloatType:
		return float32(t.Float)
	case DoubleType:
		return t.Float
	case StringType:
		return t.String
	case CompoundType:
		res := make(map[string]any, len(t.Keys))
		for i, k := range t.Keys {
			res[k] = ToNative(t.Values[i])
		}
		return res
	case ListType:
		res := make([]any, len(t.Values))
		for i, v := range t.Values {
			res[i] = ToNative(v)
		}
		return res
	case ByteArrayType:
		arr := reflect.New(reflect.ArrayOf(len(t.Values), reflect.TypeOf(uint8(0)))).Elem()
		for i, v := range t.Values {
			arr.Index(i).SetUint(uint64(uint8(int8(v.Int))))
		}
		return arr.Interface()
	case IntArrayType:
		arr := reflect.New(reflect.ArrayOf(len(t.Values), reflect.TypeOf(int32(0)))).Elem()
		for i, v := range t.Values {
			arr.Index(i).SetInt(v.Int)
		}
		return arr.Interface()
	case LongArrayType:
		arr := reflect.New(reflect.ArrayOf(len(t.Values), reflect.TypeOf(int64(0)))).Elem()
		for i, v := range t.Values {
			arr.Index(i).SetInt(v.Int)
		}
		return arr.Interface()
	}
	return nil
}
