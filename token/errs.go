package token

import (
	"errors"
	"fmt"
)

var (
	ErrExpected     = errors.New("expected")
	ErrUnexpected   = errors.New("unexpected")
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadInt       = errors.New("invalid integer")
	ErrBadNumber    = errors.New("invalid number")
)

// SyntaxErr is an error at a position of an input string.
type SyntaxErr struct {
	Err error
	Pos Pos
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func NewSyntaxErr(e error, p *Pos) *SyntaxErr {
	return &SyntaxErr{Err: e, Pos: *p}
}

func ExpectedErr(what string, p *Pos) error {
	return NewSyntaxErr(fmt.Errorf("%w %s", ErrExpected, what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewSyntaxErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
