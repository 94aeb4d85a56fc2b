package nbtpath

import (
	"errors"
	"fmt"

	"github.com/signadot/nbtpath/tag"
)

var (
	ErrInvalidNode  = errors.New("invalid path node")
	ErrNothingFound = errors.New("nothing found")
	ErrDataTooDeep  = errors.New("data too deep")
	ErrExpectedList = errors.New("expected list")
	ErrInvalidIndex = errors.New("invalid index")
)

// NotFoundErr reports a path step with no match. Prefix is the part of the
// path text before the step that failed.
type NotFoundErr struct {
	Prefix string
}

func (e *NotFoundErr) Error() string {
	return fmt.Sprintf("%s at %q", ErrNothingFound, e.Prefix)
}

func (e *NotFoundErr) Unwrap() error {
	return ErrNothingFound
}

// ExpectedListErr reports an insertion destination that is not a list or
// array.
type ExpectedListErr struct {
	Got *tag.Tag
}

func (e *ExpectedListErr) Error() string {
	if e.Got == nil {
		return ErrExpectedList.Error()
	}
	return fmt.Sprintf("%s, got %s", ErrExpectedList, e.Got.Type)
}

func (e *ExpectedListErr) Unwrap() error {
	return ErrExpectedList
}

// InvalidIndexErr reports an insertion position outside of the destination.
type InvalidIndexErr struct {
	Index int
}

func (e *InvalidIndexErr) Error() string {
	return fmt.Sprintf("%s %d", ErrInvalidIndex, e.Index)
}

func (e *InvalidIndexErr) Unwrap() error {
	return ErrInvalidIndex
}
