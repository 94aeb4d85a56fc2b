package encode_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/parse"
	"github.com/signadot/nbtpath/tag"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		in   *tag.Tag
		want string
	}{
		{"byte", tag.Byte(-3), "-3b"},
		{"short", tag.Short(7), "7s"},
		{"int", tag.Int(7), "7"},
		{"long", tag.Long(1 << 40), "1099511627776L"},
		{"float", tag.Float(1.5), "1.5f"},
		{"double", tag.Double(0.1), "0.1d"},
		{"string", tag.String(`say "hi"`), `'say "hi"'`},
		{"empty compound", tag.NewCompound(), "{}"},
		{"empty list", tag.NewList(), "[]"},
		{"int array", tag.IntArray(1, -2), "[I;1,-2]"},
		{"byte array", tag.ByteArray(1), "[B;1b]"},
		{"compound",
			tag.FromKeyVals(
				tag.KeyVal{Key: "id", Val: tag.String("minecraft:pig")},
				tag.KeyVal{Key: "odd key", Val: tag.NewList(tag.Int(1), tag.Int(2))},
			),
			`{id:"minecraft:pig","odd key":[1,2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := encode.MustString(tt.in)
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
			back, err := parse.Parse(got)
			if err != nil {
				t.Fatalf("re-parse %s: %v", got, err)
			}
			if !tag.Equal(back, tt.in) {
				t.Errorf("re-parse of %s differs", got)
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	in := tag.FromKeyVals(
		tag.KeyVal{Key: "b", Val: tag.NewList(tag.Int(1))},
		tag.KeyVal{Key: "a", Val: tag.LongArray(1, 2)},
	)
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(in, buf, encode.EncodeIndent(2), encode.EncodeSortKeys(true)); err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{
		"{",
		"  a: [L; 1L, 2L],",
		"  b: [",
		"    1",
		"  ]",
		"}",
		"",
	}, "\n")
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
	back, err := parse.Parse(buf.String())
	if err != nil {
		t.Fatal(err)
	}
	if !tag.Equal(back, in) {
		t.Error("indented output does not re-parse to the input")
	}
}

func TestEncodeColors(t *testing.T) {
	colors := encode.NewColors()
	colors.Map[encode.Colorable{Type: tag.IntType, Attr: encode.ValueColor}] = func(s string, _ ...any) string {
		return "<" + s + ">"
	}
	got := encode.MustString(tag.NewList(tag.Int(1), tag.String("x")), encode.EncodeColors(colors))
	if !strings.Contains(got, "<1>") {
		t.Errorf("int not colored: %q", got)
	}
}
