package nbtpath

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nbtpath/parse"
	"github.com/signadot/nbtpath/tag"
	"github.com/signadot/nbtpath/token"
)

func snbt(t *testing.T, s string) *tag.Tag {
	t.Helper()
	v, err := parse.Parse(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return v
}

func TestParse(t *testing.T) {
	tests := []struct {
		in    string
		nodes []Node
		ends  []int
	}{
		{
			in:    ``,
			nodes: nil,
		},
		{
			in:    `foo.bar`,
			nodes: []Node{CompoundChild{Name: "foo"}, CompoundChild{Name: "bar"}},
			ends:  []int{3, 7},
		},
		{
			in:    `foo[0].bar`,
			nodes: []Node{CompoundChild{Name: "foo"}, IndexedElement{Index: 0}, CompoundChild{Name: "bar"}},
			ends:  []int{3, 6, 10},
		},
		{
			in:    `foo[-1]`,
			nodes: []Node{CompoundChild{Name: "foo"}, IndexedElement{Index: -1}},
			ends:  []int{3, 7},
		},
		{
			in:    `foo[]`,
			nodes: []Node{CompoundChild{Name: "foo"}, AllElements{}},
			ends:  []int{3, 5},
		},
		{
			in:    `[][]`,
			nodes: []Node{AllElements{}, AllElements{}},
			ends:  []int{2, 4},
		},
		{
			in: `Inventory[{Slot:0b}].id`,
			nodes: []Node{
				CompoundChild{Name: "Inventory"},
				MatchElement{Filter: snbt(t, `{Slot:0b}`)},
				CompoundChild{Name: "id"},
			},
			ends: []int{9, 20, 23},
		},
		{
			in: `{id:"minecraft:pig"}.Pos[1]`,
			nodes: []Node{
				MatchRootObject{Filter: snbt(t, `{id:"minecraft:pig"}`)},
				CompoundChild{Name: "Pos"},
				IndexedElement{Index: 1},
			},
			ends: []int{20, 24, 27},
		},
		{
			in: `{a:1}[0]`,
			nodes: []Node{
				MatchRootObject{Filter: snbt(t, `{a:1}`)},
				IndexedElement{Index: 0},
			},
			ends: []int{5, 8},
		},
		{
			in: `Item{Count:1b}.tag`,
			nodes: []Node{
				MatchObject{Name: "Item", Filter: snbt(t, `{Count:1b}`)},
				CompoundChild{Name: "tag"},
			},
			ends: []int{14, 18},
		},
		{
			in:    `"a b".'c.d'`,
			nodes: []Node{CompoundChild{Name: "a b"}, CompoundChild{Name: "c.d"}},
			ends:  []int{5, 11},
		},
		{
			in:    `""`,
			nodes: []Node{CompoundChild{Name: ""}},
			ends:  []int{2},
		},
		{
			in:    `minecraft:custom_data.x`,
			nodes: []Node{CompoundChild{Name: "minecraft:custom_data"}, CompoundChild{Name: "x"}},
			ends:  []int{21, 23},
		},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := Parse(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.nodes, p.nodes); diff != "" {
				t.Errorf("nodes (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.ends, p.ends); diff != "" {
				t.Errorf("ends (-want +got):\n%s", diff)
			}
			if p.String() != tt.in {
				t.Errorf("String() = %q", p.String())
			}
			again, err := Parse(p.String())
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(p.nodes, again.nodes); diff != "" {
				t.Errorf("re-parse (-first +second):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{`a..b`, ErrInvalidNode},
		{`.a`, ErrInvalidNode},
		{`a.{b:1}`, ErrInvalidNode},
		{`a[0]{b:1}`, ErrInvalidNode},
		{`a{b:1}{c:1}`, ErrInvalidNode},
		{`a[0]b`, ErrInvalidNode},
		{`a]`, ErrInvalidNode},
		{`a[`, token.ErrExpected},
		{`a[0`, token.ErrExpected},
		{`a[x]`, token.ErrExpected},
		{`a[1.5]`, token.ErrBadInt},
		{`a{b:}`, parse.ErrExpectedValue},
		{`{b:1`, token.ErrExpected},
		{`"abc`, token.ErrUnterminated},
		{`a b`, token.ErrUnexpected},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := Parse(tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
			var serr *token.SyntaxErr
			if !errors.As(err, &serr) {
				t.Errorf("error %v carries no position", err)
			}
		})
	}
}

func TestParseReader(t *testing.T) {
	r := token.NewReader(`Pos[0] 12.5d`)
	p, err := ParseReader(r)
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "Pos[0]" || p.Len() != 6 {
		t.Errorf("got %q (len %d)", p.String(), p.Len())
	}
	if r.Remaining() != " 12.5d" {
		t.Errorf("cursor left at %q", r.Remaining())
	}

	r.SetCursor(0)
	r.Skip()
	r.Skip()
	r.Skip()
	p, err = ParseReader(r)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]Node{IndexedElement{Index: 0}}, p.Nodes()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3}, p.ends); diff != "" {
		t.Errorf("ends are not relative to the path start (-want +got):\n%s", diff)
	}
}

func TestNew(t *testing.T) {
	p := New(
		CompoundChild{Name: "a b"},
		IndexedElement{Index: -1},
		MatchObject{Name: "c", Filter: snbt(t, `{x:1}`)},
		MatchElement{Filter: snbt(t, `{y:"z"}`)},
		AllElements{},
		CompoundChild{Name: "d"},
	)
	want := `"a b"[-1].c{x:1}[{y:"z"}][].d`
	if p.String() != want {
		t.Fatalf("got %s want %s", p.String(), want)
	}
	q, err := Parse(p.String())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(p.nodes, q.nodes); diff != "" {
		t.Errorf("(-new +parsed):\n%s", diff)
	}
	if diff := cmp.Diff(q.ends, p.ends); diff != "" {
		t.Errorf("ends (-parsed +new):\n%s", diff)
	}
}

func TestText(t *testing.T) {
	p := &Path{}
	if err := p.UnmarshalText([]byte(`a.b[2]`)); err != nil {
		t.Fatal(err)
	}
	d, err := p.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	if string(d) != "a.b[2]" {
		t.Errorf("got %s", d)
	}
	if err := p.UnmarshalText([]byte(`a..b`)); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("got %v", err)
	}
}
