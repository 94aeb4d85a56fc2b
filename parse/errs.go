package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse         = errors.New("parse error")
	ErrExpectedKey   = fmt.Errorf("%w: expected key", ErrParse)
	ErrExpectedValue = fmt.Errorf("%w: expected value", ErrParse)
	ErrTrailing      = fmt.Errorf("%w: trailing data", ErrParse)
	ErrArrayType     = fmt.Errorf("%w: invalid array type", ErrParse)
	ErrMixedArray    = fmt.Errorf("%w: mixed array element", ErrParse)
	ErrTooDeep       = fmt.Errorf("%w: nesting too deep", ErrParse)
)
