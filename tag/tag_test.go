package tag

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestCompound(t *testing.T) {
	c := NewCompound()
	if old := c.Put("a", Int(1)); old != nil {
		t.Fatalf("Put on new key returned %v", old)
	}
	c.Put("b", Int(2))
	if old := c.Put("a", Int(3)); !Equal(old, Int(1)) {
		t.Errorf("Put returned %v, want Int(1)", old)
	}
	if diff := cmp.Diff([]string{"a", "b"}, c.Keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if !c.Contains("b") || c.Contains("z") {
		t.Error("Contains")
	}
	if old := c.Remove("a"); !Equal(old, Int(3)) {
		t.Errorf("Remove returned %v", old)
	}
	if c.Len() != 1 || c.Get("a") != nil {
		t.Errorf("after remove: len %d", c.Len())
	}
	if c.Remove("a") != nil {
		t.Error("second Remove returned a value")
	}
	if l := NewList(); l.Put("a", Int(1)) != nil || l.Len() != 0 {
		t.Error("Put on a list changed it")
	}
}

func TestCollectionInsert(t *testing.T) {
	l := NewList(Int(1), Int(3))
	ok, err := l.InsertAt(1, Int(2))
	if !ok || err != nil {
		t.Fatalf("InsertAt = %v, %v", ok, err)
	}
	if _, err := l.InsertAt(5, Int(9)); !errors.Is(err, ErrIndexRange) {
		t.Errorf("InsertAt(5) err = %v", err)
	}
	if _, err := l.InsertAt(-1, Int(9)); !errors.Is(err, ErrIndexRange) {
		t.Errorf("InsertAt(-1) err = %v", err)
	}
	if !l.Append(String("mixed")) {
		t.Error("lists take any element type")
	}
	want := NewList(Int(1), Int(2), Int(3), String("mixed"))
	if !Equal(l, want) {
		t.Errorf("got %v", ToAny(l))
	}
}

func TestArrayCoercion(t *testing.T) {
	arr := IntArray(1, 2)
	if arr.Append(String("x")) {
		t.Error("int array accepted a string")
	}
	if !arr.Append(Byte(3)) {
		t.Fatal("int array rejected a byte")
	}
	if got := arr.Index(2); got.Type != IntType || got.Int != 3 {
		t.Errorf("stored %s %d", got.Type, got.Int)
	}
	if !arr.SetAt(0, Double(7.9)) {
		t.Fatal("SetAt rejected a double")
	}
	if got := arr.Index(0); got.Type != IntType || got.Int != 7 {
		t.Errorf("stored %s %d", got.Type, got.Int)
	}
	ba := ByteArray()
	ba.Append(Int(300))
	if ba.Index(0).Int != 44 {
		t.Errorf("byte truncation: %d", ba.Index(0).Int)
	}
	if arr.SetAt(9, Int(1)) {
		t.Error("SetAt out of range succeeded")
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals(KeyVal{"l", NewList(FromKeyVals(KeyVal{"x", Int(1)}))})
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatal("clone differs")
	}
	c.Get("l").Index(0).Put("x", Int(2))
	if orig.Get("l").Index(0).Get("x").Int != 1 {
		t.Error("clone shares children with the original")
	}
}

func TestMerge(t *testing.T) {
	dst := FromKeyVals(
		KeyVal{"a", Int(1)},
		KeyVal{"sub", FromKeyVals(KeyVal{"x", Int(1)}, KeyVal{"y", Int(2)})},
	)
	src := FromKeyVals(
		KeyVal{"b", Int(2)},
		KeyVal{"sub", FromKeyVals(KeyVal{"y", Int(3)})},
	)
	dst.Merge(src)
	want := FromKeyVals(
		KeyVal{"a", Int(1)},
		KeyVal{"b", Int(2)},
		KeyVal{"sub", FromKeyVals(KeyVal{"x", Int(1)}, KeyVal{"y", Int(3)})},
	)
	if !Equal(dst, want) {
		t.Errorf("merge result %v", ToAny(dst))
	}
	src.Get("b").Int = 99
	if dst.Get("b").Int != 2 {
		t.Error("merge shares values with the source")
	}
}

func TestFromAny(t *testing.T) {
	v := map[string]any{
		"b":     true,
		"n":     float64(1.5),
		"i":     42,
		"big":   int64(1) << 40,
		"s":     "str",
		"l":     []any{1, "two"},
		"arr":   [2]int32{1, 2},
		"bytes": [1]uint8{255},
	}
	got, err := FromAny(v)
	if err != nil {
		t.Fatal(err)
	}
	want := FromKeyVals(
		KeyVal{"arr", IntArray(1, 2)},
		KeyVal{"b", Byte(1)},
		KeyVal{"big", Long(1 << 40)},
		KeyVal{"bytes", ByteArray(-1)},
		KeyVal{"i", Int(42)},
		KeyVal{"l", NewList(Int(1), String("two"))},
		KeyVal{"n", Double(1.5)},
		KeyVal{"s", String("str")},
	)
	if !Equal(got, want) {
		t.Errorf("got %v", ToAny(got))
	}
	if _, err := FromAny(map[string]any{"x": nil}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("null err = %v", err)
	}
}

func TestToNative(t *testing.T) {
	v := FromKeyVals(
		KeyVal{"b", Byte(-1)},
		KeyVal{"ia", IntArray(1, 2, 3)},
		KeyVal{"f", Float(0.5)},
	)
	got := ToNative(v).(map[string]any)
	if got["b"] != uint8(255) {
		t.Errorf("byte %#v", got["b"])
	}
	if got["ia"] != [3]int32{1, 2, 3} {
		t.Errorf("int array %#v", got["ia"])
	}
	if got["f"] != float32(0.5) {
		t.Errorf("float %#v", got["f"])
	}
	back, err := FromAny(got)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(back, v) {
		t.Errorf("native round trip %v", ToAny(back))
	}
}

func TestUUID(t *testing.T) {
	u := uuid.MustParse("f81d4fae-7dec-11d0-a765-00a0c91e6bf6")
	it := UUID(u)
	if it.Type != IntArrayType || it.Len() != 4 {
		t.Fatalf("uuid tag %s len %d", it.Type, it.Len())
	}
	if it.Index(0).Int != int64(int32(-132296786)) {
		t.Errorf("first word %d", it.Index(0).Int)
	}
	back, err := it.AsUUID()
	if err != nil {
		t.Fatal(err)
	}
	if back != u {
		t.Errorf("got %s", back)
	}
	if _, err := IntArray(1, 2).AsUUID(); !errors.Is(err, ErrNotUUID) {
		t.Errorf("short array err = %v", err)
	}
}

func TestVec3(t *testing.T) {
	v := mgl64.Vec3{1, 64.5, -3}
	got, err := Vec3(v).AsVec3()
	if err != nil {
		t.Fatal(err)
	}
	if got != v {
		t.Errorf("got %v", got)
	}
	if _, err := NewList(String("x"), Int(1), Int(2)).AsVec3(); !errors.Is(err, ErrNotVec3) {
		t.Errorf("err = %v", err)
	}
}
