package token

import (
	"errors"
	"testing"
)

func TestReadQuoted(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		rest    string
		wantErr error
	}{
		{name: "double", input: `"a b" c`, want: "a b", rest: " c"},
		{name: "single", input: `'a"b'`, want: `a"b`},
		{name: "escaped quote", input: `"a\"b"x`, want: `a"b`, rest: "x"},
		{name: "escaped backslash", input: `'a\\b'`, want: `a\b`},
		{name: "bad escape", input: `"a\nb"`, wantErr: ErrBadEscape},
		{name: "unterminated", input: `"abc`, wantErr: ErrUnterminated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(tt.input)
			got, err := r.ReadQuoted()
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				var se *SyntaxErr
				if !errors.As(err, &se) {
					t.Errorf("err %T is not a *SyntaxErr", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if r.Remaining() != tt.rest {
				t.Errorf("remaining %q, want %q", r.Remaining(), tt.rest)
			}
		})
	}
}

func TestReadInt(t *testing.T) {
	r := NewReader("-12]")
	i, err := r.ReadInt()
	if err != nil || i != -12 {
		t.Fatalf("ReadInt = %d, %v", i, err)
	}
	if r.Cursor() != 3 {
		t.Errorf("cursor %d", r.Cursor())
	}
	if _, err := NewReader("]").ReadInt(); !errors.Is(err, ErrExpected) {
		t.Errorf("empty err = %v", err)
	}
	if _, err := NewReader("1.5]").ReadInt(); !errors.Is(err, ErrBadInt) {
		t.Errorf("float err = %v", err)
	}
}

func TestExpect(t *testing.T) {
	r := NewReader("a.")
	if err := r.Expect('.'); !errors.Is(err, ErrExpected) {
		t.Fatalf("err = %v", err)
	}
	if r.Cursor() != 0 {
		t.Error("failed Expect moved the cursor")
	}
	r.Skip()
	if err := r.Expect('.'); err != nil {
		t.Fatal(err)
	}
	if r.CanRead() {
		t.Error("input left")
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"abc", `"abc"`},
		{`a"b`, `'a"b'`},
		{`a'b"c`, `"a'b\"c"`},
		{`a\b`, `"a\\b"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
		r := NewReader(Quote(tt.in))
		back, err := r.ReadQuoted()
		if err != nil || back != tt.in {
			t.Errorf("read back %q, %v", back, err)
		}
	}
	if NeedsQuote("foo.bar_1") || !NeedsQuote("a b") || !NeedsQuote("") {
		t.Error("NeedsQuote")
	}
}

func TestPosString(t *testing.T) {
	p := Pos{Input: "line1\nfoo.bar", Offset: 9}
	line, col := p.LineCol()
	if line != 1 || col != 3 {
		t.Errorf("line %d col %d", line, col)
	}
	want := "`...line1\\nfoo<--[HERE]` at offset 9 (line=1, col=3)"
	if got := p.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
