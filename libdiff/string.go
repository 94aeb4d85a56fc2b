package libdiff

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Text diffs from and to line by line. Lines are prefixed with "- ", "+ "
// or "  ", and colored red and green when colors is set.
func Text(from, to string, colors bool) string {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lines)

	del, ins := fmtNone, fmtNone
	if colors {
		del = color.New(color.FgRed).SprintFunc()
		ins = color.New(color.FgGreen).SprintFunc()
	}
	buf := &strings.Builder{}
	for _, d := range diffs {
		prefix, f := "  ", fmtNone
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix, f = "- ", del
		case diffpatch.DiffInsert:
			prefix, f = "+ ", ins
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(f(prefix + strings.TrimSuffix(ln, "\n")))
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}

func fmtNone(a ...any) string {
	return a[0].(string)
}
