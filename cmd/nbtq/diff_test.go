package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/signadot/nbtpath/parse"
)

func TestDiffDocs(t *testing.T) {
	from, _ := parse.Parse(`{id:"minecraft:pig",Health:10f,Tags:["a"]}`)
	to, _ := parse.Parse(`{id:"minecraft:pig",Health:8f,Tags:["a","b"],Age:0}`)
	tests := []struct {
		name string
		text bool
		want []string
	}{
		{"changes", false, []string{"~ Health 10f -> 8f\n+ Tags[1] \"b\"\n+ Age 0\n"}},
		{"text", true, []string{"+   Age: 0,\n", "-   Health: 10f,\n", "+   Health: 8f,\n", "    id: \"minecraft:pig\"\n", "+     \"b\"\n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &DiffConfig{MainConfig: &MainConfig{}, Text: tt.text}
			buf := &bytes.Buffer{}
			differs, err := diffDocs(cfg, buf, from, to)
			if err != nil {
				t.Fatal(err)
			}
			if !differs {
				t.Error("no difference reported")
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("got\n%s\nmissing\n%s", buf.String(), w)
				}
			}
		})
	}
	cfg := &DiffConfig{MainConfig: &MainConfig{}}
	if differs, _ := diffDocs(cfg, &bytes.Buffer{}, from, from.Clone()); differs {
		t.Error("equal documents differ")
	}
}
