package encode

import (
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/nbtpath/tag"
	"github.com/signadot/nbtpath/token"
)

type EncState struct {
	depth, indent int
	sortKeys      bool

	Color func(tag.Type, ColorAttr, string) string
}

// Encode writes t as SNBT followed by a newline.
func Encode(t *tag.Tag, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	b := &strings.Builder{}
	encode(t, b, es)
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func (es *EncState) color(t tag.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) newline(b *strings.Builder) {
	if es.indent == 0 {
		return
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", es.depth*es.indent))
}

func encode(t *tag.Tag, b *strings.Builder, es *EncState) {
	if t == nil {
		return
	}
	switch t.Type {
	case tag.ByteType:
		scalar(b, es, t.Type, strconv.FormatInt(t.Int, 10), "b")
	case tag.ShortType:
		scalar(b, es, t.Type, strconv.FormatInt(t.Int, 10), "s")
	case tag.IntType:
		scalar(b, es, t.Type, strconv.FormatInt(t.Int, 10), "")
	case tag.LongType:
		scalar(b, es, t.Type, strconv.FormatInt(t.Int, 10), "L")
	case tag.FloatType:
		scalar(b, es, t.Type, strconv.FormatFloat(t.Float, 'g', -1, 32), "f")
	case tag.DoubleType:
		scalar(b, es, t.Type, strconv.FormatFloat(t.Float, 'g', -1, 64), "d")
	case tag.StringType:
		b.WriteString(es.color(t.Type, ValueColor, token.Quote(t.String)))
	case tag.CompoundType:
		encodeCompound(t, b, es)
	case tag.ListType:
		encodeList(t, b, es)
	case tag.ByteArrayType, tag.IntArrayType, tag.LongArrayType:
		encodeArray(t, b, es)
	}
}

func scalar(b *strings.Builder, es *EncState, t tag.Type, v, suffix string) {
	b.WriteString(es.color(t, ValueColor, v))
	if suffix != "" {
		b.WriteString(es.color(t, SuffixColor, suffix))
	}
}

func encodeCompound(t *tag.Tag, b *strings.Builder, es *EncState) {
	sep := func(s string) string { return es.color(tag.CompoundType, SepColor, s) }
	if len(t.Keys) == 0 {
		b.WriteString(sep("{}"))
		return
	}
	order := make([]int, len(t.Keys))
	for i := range order {
		order[i] = i
	}
	if es.sortKeys {
		slices.SortFunc(order, func(i, j int) int { return strings.Compare(t.Keys[i], t.Keys[j]) })
	}
	b.WriteString(sep("{"))
	es.depth++
	for n, i := range order {
		if n != 0 {
			b.WriteString(sep(","))
		}
		es.newline(b)
		b.WriteString(es.color(tag.CompoundType, KeyColor, token.QuoteIfNeeded(t.Keys[i])))
		b.WriteString(sep(":"))
		if es.indent != 0 {
			b.WriteByte(' ')
		}
		encode(t.Values[i], b, es)
	}
	es.depth--
	es.newline(b)
	b.WriteString(sep("}"))
}

func encodeList(t *tag.Tag, b *strings.Builder, es *EncState) {
	sep := func(s string) string { return es.color(tag.ListType, SepColor, s) }
	if len(t.Values) == 0 {
		b.WriteString(sep("[]"))
		return
	}
	b.WriteString(sep("["))
	es.depth++
	for i, v := range t.Values {
		if i != 0 {
			b.WriteString(sep(","))
		}
		es.newline(b)
		encode(v, b, es)
	}
	es.depth--
	es.newline(b)
	b.WriteString(sep("]"))
}

var arrayPrefix = map[tag.Type]string{
	tag.ByteArrayType: "B;",
	tag.IntArrayType:  "I;",
	tag.LongArrayType: "L;",
}

func encodeArray(t *tag.Tag, b *strings.Builder, es *EncState) {
	b.WriteString(es.color(t.Type, SepColor, "["))
	b.WriteString(es.color(t.Type, SuffixColor, arrayPrefix[t.Type]))
	for i, v := range t.Values {
		if i != 0 {
			b.WriteString(es.color(t.Type, SepColor, ","))
			if es.indent != 0 {
				b.WriteByte(' ')
			}
		} else if es.indent != 0 {
			b.WriteByte(' ')
		}
		encode(v, b, es)
	}
	b.WriteString(es.color(t.Type, SepColor, "]"))
}
