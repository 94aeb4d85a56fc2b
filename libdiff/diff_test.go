package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/parse"
	"github.com/signadot/nbtpath/tag"
)

func snbt(t *testing.T, s string) *tag.Tag {
	t.Helper()
	v, err := parse.Parse(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return v
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name, from, to string
		want           []string
	}{
		{"same", `{a:1,b:[1,2]}`, `{b:[1,2],a:1}`, nil},
		{"scalar", `{a:1}`, `{a:2}`, []string{`~ a 1 -> 2`}},
		{"width", `{a:1}`, `{a:1b}`, []string{`~ a 1 -> 1b`}},
		{"fields", `{a:1,b:2}`, `{b:2,c:3}`, []string{`- a 1`, `+ c 3`}},
		{"nested", `{a:{b:{c:1}}}`, `{a:{b:{c:1,d:"x"}}}`, []string{`+ a.b.d "x"`}},
		{"append", `{l:[1,2]}`, `{l:[1,2,3]}`, []string{`+ l[2] 3`}},
		{"prepend", `{l:[1,2]}`, `{l:[0,1,2]}`, []string{`+ l[0] 0`}},
		{"remove", `{l:[1,2,3]}`, `{l:[1,3]}`, []string{`- l[1] 2`}},
		{"replace", `{l:[1,2,3]}`, `{l:[1,5,3]}`, []string{`~ l[1] 2 -> 5`}},
		{"element", `{l:[{id:1},{id:2}]}`, `{l:[{id:1},{id:3}]}`, []string{`~ l[1].id 2 -> 3`}},
		{"array", `{a:[I;1,2]}`, `{a:[I;2]}`, []string{`- a[0] 1`}},
		{"quoted", `{"a b":1}`, `{"a b":2}`, []string{`~ "a b" 1 -> 2`}},
		{"root", `1`, `"x"`, []string{`~  1 -> "x"`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := snbt(t, tt.from), snbt(t, tt.to)
			changes := Diff(from, to)
			var got []string
			for _, c := range changes {
				got = append(got, c.String())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if err := Apply(from, changes); err != nil {
				t.Fatal(err)
			}
			if !tag.Equal(from, to) {
				t.Errorf("applied: %s want %s", encode.MustString(from), tt.to)
			}
		})
	}
}

func TestDiffApply(t *testing.T) {
	pairs := [][2]string{
		{`{l:[1,2,3,4,5]}`, `{l:[5,4,3,2,1]}`},
		{`{l:[a,b,c]}`, `{l:[x,y]}`},
		{`{l:[]}`, `{l:[[1],[2,3]]}`},
		{`{l:[[1,2],[3]]}`, `{l:[[2],[3,4],[]]}`},
		{`{l:[{a:1},{b:2},{c:3}]}`, `{l:[{c:3},{a:1,z:0}]}`},
		{`{a:[B;1b,2b,3b],b:[L;]}`, `{a:[B;3b],b:[L;7L,8L]}`},
		{`{x:{y:[1]}}`, `{x:[{y:1}]}`},
	}
	for _, p := range pairs {
		from, to := snbt(t, p[0]), snbt(t, p[1])
		if err := Apply(from, Diff(from.Clone(), to)); err != nil {
			t.Fatalf("%s -> %s: %v", p[0], p[1], err)
		}
		if !tag.Equal(from, to) {
			t.Errorf("%s -> %s: got %s", p[0], p[1], encode.MustString(from))
		}
	}
}

func TestApplyConflict(t *testing.T) {
	changes := Diff(snbt(t, `{a:1}`), snbt(t, `{}`))
	if err := Apply(snbt(t, `{b:1}`), changes); err == nil {
		t.Error("expected conflict")
	}
}

func TestText(t *testing.T) {
	got := Text("a\nb\nc\n", "a\nc\nd\n", false)
	want := strings.Join([]string{"  a", "- b", "  c", "+ d", ""}, "\n")
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestMergePatch(t *testing.T) {
	p, err := MergePatch(snbt(t, `{a:1,b:{c:2,d:3}}`), snbt(t, `{a:1,b:{c:5},e:"x"}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(p); got != `{"b":{"c":5,"d":null},"e":"x"}` {
		t.Errorf("got %s", got)
	}
}

func TestApplyJSONPatch(t *testing.T) {
	got, err := ApplyJSONPatch(snbt(t, `{a:[1,2],b:1.5d}`), []byte(`[{"op":"add","path":"/a/-","value":3},{"op":"remove","path":"/b"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if s := encode.MustString(got); s != `{a:[1,2,3]}` {
		t.Errorf("got %s", s)
	}
}
