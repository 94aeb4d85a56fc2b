// Package token provides the cursor [Reader] shared by the path and SNBT
// parsers, source positions and syntax errors.
//
// A [Reader] is positioned on a command line; each parser consumes its
// argument and leaves the cursor on the character that ended it, so the
// caller can continue with the next argument.
//
// Errors carry a [Pos] and wrap one of the sentinel errors, so callers can
// use errors.Is and errors.As on them.
package token
