package session

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrTrailing       = errors.New("trailing input")
	ErrMergeTarget    = errors.New("expected compound")
	ErrNotNumeric     = errors.New("expected numeric tag")
	ErrMultipleTags   = errors.New("path selects more than one tag")
	ErrUnchanged      = errors.New("nothing changed")
)
