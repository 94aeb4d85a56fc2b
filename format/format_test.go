package format

import (
	"errors"
	"testing"
)

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s round trips to %s", f, g)
		}
		if f.IsText() == f.IsBinary() {
			t.Errorf("%s is both or neither text and binary", f)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
	if f, _ := ParseFormat("s"); f != SNBTFormat {
		t.Errorf("got %s", f)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"level.dat", NBTFormat, true},
		{"a/b/house.mcstructure", NBTLEFormat, true},
		{"player.SNBT", SNBTFormat, true},
		{"x.yml", YAMLFormat, true},
		{"x.json", JSONFormat, true},
		{"-", SNBTFormat, false},
		{"notes.txt", SNBTFormat, false},
	}
	for _, tt := range tests {
		f, ok := FromPath(tt.path)
		if f != tt.want || ok != tt.ok {
			t.Errorf("%s: got %s %v want %s %v", tt.path, f, ok, tt.want, tt.ok)
		}
	}
}
