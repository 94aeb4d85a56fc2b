package nbtpath

import (
	"strconv"
	"strings"

	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/tag"
	"github.com/signadot/nbtpath/token"
)

// Node is one step of a Path. It selects zero or more children of each
// tag produced by the previous step.
//
// The set of nodes is closed: CompoundChild, AllElements, IndexedElement,
// MatchRootObject, MatchObject and MatchElement.
type Node interface {
	// String renders the node in path syntax.
	String() string

	read(cur *tag.Tag, dst []*tag.Tag) []*tag.Tag
	readOrCreate(cur *tag.Tag, mk func() *tag.Tag, dst []*tag.Tag) []*tag.Tag
	preferredParent() *tag.Tag
	write(cur *tag.Tag, mk func() *tag.Tag) int
	delete(cur *tag.Tag) int
}

// CompoundChild selects the field Name of a compound: `name` or `"a name"`.
type CompoundChild struct {
	Name string
}

func (n CompoundChild) String() string { return quoteName(n.Name) }

func (n CompoundChild) read(cur *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	if v := cur.Get(n.Name); v != nil {
		dst = append(dst, v)
	}
	return dst
}

func (n CompoundChild) readOrCreate(cur *tag.Tag, mk func() *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	if !cur.IsCompound() {
		return dst
	}
	v := cur.Get(n.Name)
	if v == nil {
		v = mk()
		cur.Put(n.Name, v)
	}
	return append(dst, v)
}

func (n CompoundChild) preferredParent() *tag.Tag { return tag.NewCompound() }

func (n CompoundChild) write(cur *tag.Tag, mk func() *tag.Tag) int {
	if !cur.IsCompound() {
		return 0
	}
	v := mk()
	if old := cur.Put(n.Name, v); tag.Equal(v, old) {
		return 0
	}
	return 1
}

func (n CompoundChild) delete(cur *tag.Tag) int {
	if cur.Remove(n.Name) == nil {
		return 0
	}
	return 1
}

// AllElements selects every element of a list or array: `[]`.
type AllElements struct{}

func (AllElements) String() string { return "[]" }

func (AllElements) read(cur *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	if !cur.IsCollection() {
		return dst
	}
	return append(dst, cur.Values...)
}

func (AllElements) readOrCreate(cur *tag.Tag, mk func() *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	if !cur.IsCollection() {
		return dst
	}
	if cur.Len() != 0 {
		return append(dst, cur.Values...)
	}
	if ok, _ := cur.InsertAt(0, mk()); ok {
		dst = append(dst, cur.Values[0])
	}
	return dst
}

func (AllElements) preferredParent() *tag.Tag { return tag.NewList() }

// write on a non-empty collection is a bulk set: the collection keeps its
// length and every element becomes a copy of the new value. The count is
// the number of elements that differed from it.
func (AllElements) write(cur *tag.Tag, mk func() *tag.Tag) int {
	if !cur.IsCollection() {
		return 0
	}
	size := cur.Len()
	if size == 0 {
		if ok, _ := cur.InsertAt(0, mk()); ok {
			return 1
		}
		return 0
	}
	v := mk()
	if !cur.Accepts(v) {
		return 0
	}
	changed := size
	for _, e := range cur.Values {
		if tag.Equal(e, v) {
			changed--
		}
	}
	if changed == 0 {
		return 0
	}
	cur.Clear()
	cur.Append(v)
	for i := 1; i < size; i++ {
		cur.Append(mk())
	}
	return changed
}

func (AllElements) delete(cur *tag.Tag) int {
	if !cur.IsCollection() {
		return 0
	}
	size := cur.Len()
	cur.Clear()
	return size
}

// IndexedElement selects one element of a list or array: `[2]`. Negative
// indices count from the end, `[-1]` being the last element.
type IndexedElement struct {
	Index int
}

func (n IndexedElement) String() string { return "[" + strconv.Itoa(n.Index) + "]" }

func (n IndexedElement) resolve(cur *tag.Tag) (int, bool) {
	if !cur.IsCollection() {
		return 0, false
	}
	size := cur.Len()
	i := n.Index
	if i < 0 {
		i += size
	}
	return i, 0 <= i && i < size
}

func (n IndexedElement) read(cur *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	if i, ok := n.resolve(cur); ok {
		dst = append(dst, cur.Values[i])
	}
	return dst
}

func (n IndexedElement) readOrCreate(cur *tag.Tag, _ func() *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	return n.read(cur, dst)
}

func (n IndexedElement) preferredParent() *tag.Tag { return tag.NewList() }

func (n IndexedElement) write(cur *tag.Tag, mk func() *tag.Tag) int {
	i, ok := n.resolve(cur)
	if !ok {
		return 0
	}
	v := mk()
	if tag.Equal(v, cur.Values[i]) || !cur.SetAt(i, v) {
		return 0
	}
	return 1
}

func (n IndexedElement) delete(cur *tag.Tag) int {
	i, ok := n.resolve(cur)
	if !ok {
		return 0
	}
	cur.RemoveAt(i)
	return 1
}

// MatchRootObject selects the tag a path is applied to when it is a
// compound matching Filter: `{id:"minecraft:pig"}`. It may only be the
// first node of a path and never replaces or removes anything.
type MatchRootObject struct {
	Filter *tag.Tag
}

func (n MatchRootObject) String() string { return encode.MustString(n.Filter) }

func (n MatchRootObject) read(cur *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	if cur.IsCompound() && tag.Matches(n.Filter, cur) {
		dst = append(dst, cur)
	}
	return dst
}

func (n MatchRootObject) readOrCreate(cur *tag.Tag, _ func() *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	return n.read(cur, dst)
}

func (n MatchRootObject) preferredParent() *tag.Tag { return tag.NewCompound() }

func (MatchRootObject) write(*tag.Tag, func() *tag.Tag) int { return 0 }

func (MatchRootObject) delete(*tag.Tag) int { return 0 }

// MatchObject selects the field Name of a compound when it matches Filter:
// `Item{Count:1b}`.
type MatchObject struct {
	Name   string
	Filter *tag.Tag
}

func (n MatchObject) String() string {
	return quoteName(n.Name) + encode.MustString(n.Filter)
}

func (n MatchObject) match(cur *tag.Tag) *tag.Tag {
	v := cur.Get(n.Name)
	if v == nil || !tag.Matches(n.Filter, v) {
		return nil
	}
	return v
}

func (n MatchObject) read(cur *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	if v := n.match(cur); v != nil {
		dst = append(dst, v)
	}
	return dst
}

// readOrCreate fills an absent field with a copy of the filter.
func (n MatchObject) readOrCreate(cur *tag.Tag, _ func() *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	if !cur.IsCompound() {
		return dst
	}
	v := cur.Get(n.Name)
	if v == nil {
		v = n.Filter.Clone()
		cur.Put(n.Name, v)
		return append(dst, v)
	}
	if tag.Matches(n.Filter, v) {
		dst = append(dst, v)
	}
	return dst
}

func (n MatchObject) preferredParent() *tag.Tag { return tag.NewCompound() }

func (n MatchObject) write(cur *tag.Tag, mk func() *tag.Tag) int {
	old := n.match(cur)
	if old == nil {
		return 0
	}
	v := mk()
	if tag.Equal(v, old) {
		return 0
	}
	cur.Put(n.Name, v)
	return 1
}

func (n MatchObject) delete(cur *tag.Tag) int {
	if n.match(cur) == nil {
		return 0
	}
	cur.Remove(n.Name)
	return 1
}

// MatchElement selects the elements of a list matching Filter:
// `[{Slot:0b}]`. Arrays hold no compounds and never match.
type MatchElement struct {
	Filter *tag.Tag
}

func (n MatchElement) String() string { return "[" + encode.MustString(n.Filter) + "]" }

func (n MatchElement) read(cur *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	if !cur.IsList() {
		return dst
	}
	for _, e := range cur.Values {
		if tag.Matches(n.Filter, e) {
			dst = append(dst, e)
		}
	}
	return dst
}

// readOrCreate appends a copy of the filter when no element matches.
func (n MatchElement) readOrCreate(cur *tag.Tag, _ func() *tag.Tag, dst []*tag.Tag) []*tag.Tag {
	if !cur.IsList() {
		return dst
	}
	start := len(dst)
	dst = n.read(cur, dst)
	if len(dst) > start {
		return dst
	}
	v := n.Filter.Clone()
	cur.Append(v)
	return append(dst, v)
}

func (n MatchElement) preferredParent() *tag.Tag { return tag.NewList() }

func (n MatchElement) write(cur *tag.Tag, mk func() *tag.Tag) int {
	if !cur.IsList() {
		return 0
	}
	if cur.Len() == 0 {
		cur.Append(mk())
		return 1
	}
	changed := 0
	for i, e := range cur.Values {
		if !tag.Matches(n.Filter, e) {
			continue
		}
		v := mk()
		if !tag.Equal(v, e) && cur.SetAt(i, v) {
			changed++
		}
	}
	return changed
}

func (n MatchElement) delete(cur *tag.Tag) int {
	if !cur.IsList() {
		return 0
	}
	removed := 0
	for i := cur.Len() - 1; i >= 0; i-- {
		if tag.Matches(n.Filter, cur.Values[i]) {
			cur.RemoveAt(i)
			removed++
		}
	}
	return removed
}

// isNameChar reports whether c may appear in an unquoted node name.
func isNameChar(c byte) bool {
	return !strings.ContainsRune(" \"'[].{}", rune(c))
}

func quoteName(name string) string {
	if name == "" || strings.ContainsAny(name, " \"'[].{}") {
		return token.Quote(name)
	}
	return name
}
