package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/nbtpath/debug"
	"github.com/signadot/nbtpath/tag"
	"github.com/signadot/nbtpath/token"
)

// Parse parses a complete SNBT literal. Surrounding whitespace is allowed,
// anything else after the literal is an error.
func Parse(s string, opts ...ParseOption) (*tag.Tag, error) {
	r := token.NewReader(s)
	res, err := ParseValue(r, opts...)
	if err != nil {
		return nil, err
	}
	r.SkipWhitespace()
	if r.CanRead() {
		return nil, token.NewSyntaxErr(ErrTrailing, r.Pos())
	}
	return res, nil
}

// ParseValue parses one SNBT value at the cursor of r and leaves the
// cursor just after it.
func ParseValue(r *token.Reader, opts ...ParseOption) (*tag.Tag, error) {
	p := &parser{r: r, opts: newOpts(opts)}
	start := r.Cursor()
	res, err := p.value()
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed value %q\n", r.Input()[start:r.Cursor()])
	}
	return res, nil
}

// ParseCompound parses a compound literal at the cursor of r and leaves
// the cursor just after its closing brace.
func ParseCompound(r *token.Reader, opts ...ParseOption) (*tag.Tag, error) {
	p := &parser{r: r, opts: newOpts(opts)}
	return p.compound()
}

type parser struct {
	r    *token.Reader
	opts *parseOpts
}

func (p *parser) push() error {
	p.opts.depth++
	if p.opts.depth > p.opts.maxDepth {
		return token.NewSyntaxErr(fmt.Errorf("%w: depth > %d", ErrTooDeep, p.opts.maxDepth), p.r.Pos())
	}
	return nil
}

func (p *parser) pop() {
	p.opts.depth--
}

func (p *parser) value() (*tag.Tag, error) {
	r := p.r
	r.SkipWhitespace()
	if !r.CanRead() {
		return nil, token.NewSyntaxErr(ErrExpectedValue, r.Pos())
	}
	switch r.Peek() {
	case '{':
		return p.compound()
	case '[':
		return p.list()
	}
	return p.typed()
}

func (p *parser) typed() (*tag.Tag, error) {
	r := p.r
	r.SkipWhitespace()
	start := r.Cursor()
	if r.CanRead() && token.IsQuote(r.Peek()) {
		s, err := r.ReadQuoted()
		if err != nil {
			return nil, err
		}
		return tag.String(s), nil
	}
	s := r.ReadUnquoted()
	if s == "" {
		return nil, token.NewSyntaxErr(ErrExpectedValue, r.PosAt(start))
	}
	return scalar(s), nil
}

func (p *parser) key() (string, error) {
	r := p.r
	r.SkipWhitespace()
	if !r.CanRead() {
		return "", token.NewSyntaxErr(ErrExpectedKey, r.Pos())
	}
	return r.ReadString()
}

func (p *parser) expect(c byte) error {
	p.r.SkipWhitespace()
	return p.r.Expect(c)
}

func (p *parser) separator() bool {
	r := p.r
	r.SkipWhitespace()
	if r.CanRead() && r.Peek() == ',' {
		r.Skip()
		r.SkipWhitespace()
		return true
	}
	return false
}

func (p *parser) compound() (*tag.Tag, error) {
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	r := p.r
	res := tag.NewCompound()
	r.SkipWhitespace()
	for r.CanRead() && r.Peek() != '}' {
		start := r.Cursor()
		k, err := p.key()
		if err != nil {
			return nil, err
		}
		if k == "" {
			return nil, token.NewSyntaxErr(ErrExpectedKey, r.PosAt(start))
		}
		if err := p.expect(':'); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Put(k, v)
		if !p.separator() {
			break
		}
		if !r.CanRead() {
			return nil, token.NewSyntaxErr(ErrExpectedKey, r.Pos())
		}
	}
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *parser) list() (*tag.Tag, error) {
	r := p.r
	if r.CanReadN(3) && !token.IsQuote(r.PeekAt(1)) && r.PeekAt(2) == ';' {
		return p.array()
	}
	if err := p.expect('['); err != nil {
		return nil, err
	}
	if err := p.push(); err != nil {
		return nil, err
	}
	defer p.pop()
	r.SkipWhitespace()
	if !r.CanRead() {
		return nil, token.NewSyntaxErr(ErrExpectedValue, r.Pos())
	}
	res := tag.NewList()
	for r.Peek() != ']' {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		res.Values = append(res.Values, v)
		if !p.separator() {
			break
		}
		if !r.CanRead() {
			return nil, token.NewSyntaxErr(ErrExpectedValue, r.Pos())
		}
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return res, nil
}

func (p *parser) array() (*tag.Tag, error) {
	r := p.r
	if err := p.expect('['); err != nil {
		return nil, err
	}
	typePos := r.Pos()
	c := r.Read()
	r.Skip()
	r.SkipWhitespace()
	if !r.CanRead() {
		return nil, token.NewSyntaxErr(ErrExpectedValue, r.Pos())
	}
	var res *tag.Tag
	switch c {
	case 'B':
		res = tag.ByteArray()
	case 'I':
		res = tag.IntArray()
	case 'L':
		res = tag.LongArray()
	default:
		return nil, token.NewSyntaxErr(fmt.Errorf("%w '%c'", ErrArrayType, c), typePos)
	}
	et := res.Type.ElemType()
	for r.Peek() != ']' {
		start := r.Cursor()
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		if v.Type != et {
			return nil, token.NewSyntaxErr(fmt.Errorf("%w: can't insert %s into %s", ErrMixedArray, v.Type, res.Type), r.PosAt(start))
		}
		res.Values = append(res.Values, v)
		if !p.separator() {
			break
		}
		if !r.CanRead() {
			return nil, token.NewSyntaxErr(ErrExpectedValue, r.Pos())
		}
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return res, nil
}

const decimal = `[-+]?(?:[0-9]+[.]?|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?`

var (
	floatRe    = regexp.MustCompile(`(?i)^` + decimal + `f$`)
	doubleRe   = regexp.MustCompile(`(?i)^` + decimal + `d$`)
	doubleNoRe = regexp.MustCompile(`(?i)^[-+]?(?:[0-9]+[.]|[0-9]*[.][0-9]+)(?:e[-+]?[0-9]+)?$`)
	byteRe     = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)b$`)
	shortRe    = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)s$`)
	longRe     = regexp.MustCompile(`(?i)^[-+]?(?:0|[1-9][0-9]*)l$`)
	intRe      = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
)

// scalar types an unquoted literal by its shape. Numbers that overflow
// their type are read as strings.
func scalar(s string) *tag.Tag {
	n := len(s)
	switch {
	case floatRe.MatchString(s):
		if f, err := strconv.ParseFloat(s[:n-1], 32); err == nil {
			return tag.Float(float32(f))
		}
	case byteRe.MatchString(s):
		if i, err := strconv.ParseInt(s[:n-1], 10, 8); err == nil {
			return tag.Byte(int8(i))
		}
	case longRe.MatchString(s):
		if i, err := strconv.ParseInt(s[:n-1], 10, 64); err == nil {
			return tag.Long(i)
		}
	case shortRe.MatchString(s):
		if i, err := strconv.ParseInt(s[:n-1], 10, 16); err == nil {
			return tag.Short(int16(i))
		}
	case intRe.MatchString(s):
		if i, err := strconv.ParseInt(s, 10, 32); err == nil {
			return tag.Int(int32(i))
		}
	case doubleRe.MatchString(s):
		if f, err := strconv.ParseFloat(s[:n-1], 64); err == nil {
			return tag.Double(f)
		}
	case doubleNoRe.MatchString(s):
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return tag.Double(f)
		}
	case strings.EqualFold(s, "true"):
		return tag.Bool(true)
	case strings.EqualFold(s, "false"):
		return tag.Bool(false)
	}
	return tag.String(s)
}
