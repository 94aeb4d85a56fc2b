package codec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/format"
	"github.com/signadot/nbtpath/parse"
	"github.com/signadot/nbtpath/tag"
)

const level = `{
	Data: {
		LevelName: "world",
		hardcore: 0b,
		SpawnY: 64,
		Time: 123456789012L,
		BorderSize: 5.9999968E7d,
		Difficulty: 2s,
		Speed: 0.1f,
		Player: {Pos: [1.5d, 64d, -2d], UUID: [I; 1, -2, 3, -4]},
		Bytes: [B; 1b, -1b],
		Seeds: [L; 1L, 2L],
		Tags: ["a", "b"]
	}
}`

func TestBinaryRoundTrip(t *testing.T) {
	want, err := parse.Parse(level)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []format.Format{format.NBTFormat, format.NBTLEFormat, format.NBTNetFormat} {
		for _, gz := range []bool{false, true} {
			buf := bytes.NewBuffer(nil)
			if err := Encode(buf, want, f, Gzip(gz)); err != nil {
				t.Fatalf("%s gzip=%t: %v", f, gz, err)
			}
			if gz && !bytes.HasPrefix(buf.Bytes(), gzipMagic) {
				t.Errorf("%s output not compressed", f)
			}
			got, err := Decode(buf, f)
			if err != nil {
				t.Fatalf("%s gzip=%t: %v", f, gz, err)
			}
			if !tag.Equal(got, want) {
				t.Errorf("%s gzip=%t: got %s", f, gz, encode.MustString(got))
			}
		}
	}
}

func TestBinaryRoot(t *testing.T) {
	err := Encode(bytes.NewBuffer(nil), tag.NewList(), format.NBTFormat)
	if !errors.Is(err, ErrNotCompound) {
		t.Errorf("got %v", err)
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		f    format.Format
		in   string
		want string
	}{
		{format.SNBTFormat, `{a:1b}`, `{a:1b}`},
		{format.JSONFormat, `{"a":1,"b":[1.5,"x"],"c":{"d":true},"e":4294967296}`, `{a:1,b:[1.5d,"x"],c:{d:1b},e:4294967296L}`},
		{format.YAMLFormat, "a: 1\nb: [x, 2.5]\nc: -3\n", `{a:1,b:["x",2.5d],c:-3}`},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.in), tt.f)
			if err != nil {
				t.Fatal(err)
			}
			want, err := parse.Parse(tt.want)
			if err != nil {
				t.Fatal(err)
			}
			if !tag.Equal(got, want) {
				t.Errorf("got %s want %s", encode.MustString(got), tt.want)
			}
		})
	}
}

func TestEncodeText(t *testing.T) {
	in, err := parse.Parse(`{b:[1b,2.5f],a:"x"}`)
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := Encode(buf, in, format.JSONFormat); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{\"a\":\"x\",\"b\":[1,2.5]}\n" {
		t.Errorf("got %q", got)
	}
	buf.Reset()
	if err := Encode(buf, in, format.SNBTFormat, SNBTOptions(encode.EncodeSortKeys(true))); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "{a:\"x\",b:[1b,2.5f]}\n" {
		t.Errorf("got %q", got)
	}
	buf.Reset()
	if err := Encode(buf, in, format.YAMLFormat); err != nil {
		t.Fatal(err)
	}
	back, err := Decode(buf, format.YAMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if want := `{a:"x",b:[1,2.5d]}`; !tag.Equal(back, mustParse(t, want)) {
		t.Errorf("yaml round trip: %s", encode.MustString(back))
	}
}

func mustParse(t *testing.T, s string) *tag.Tag {
	t.Helper()
	v, err := parse.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return v
}
