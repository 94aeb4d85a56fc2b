package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Pos is an offset into an input string.
type Pos struct {
	Input  string
	Offset int
}

// LineCol returns the 0 based line and column of p.
func (p *Pos) LineCol() (int, int) {
	off := min(p.Offset, len(p.Input))
	before := p.Input[:off]
	line := strings.Count(before, "\n")
	if i := strings.LastIndexByte(before, '\n'); i >= 0 {
		return line, off - i - 1
	}
	return line, off
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if len(p.Input) > 0 {
		end := min(p.Offset, len(p.Input))
		sample = p.Input[max(0, end-10):end] + "<--[HERE]"
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	line, col := p.LineCol()
	return fmt.Sprintf("`...%s` at offset %d (line=%d, col=%d)", sample, p.Offset, line, col)
}
