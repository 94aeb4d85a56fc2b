package session

import (
	"fmt"

	"github.com/signadot/nbtpath/debug"
	"github.com/signadot/nbtpath/tag"
	"github.com/signadot/nbtpath/token"
)

// Session holds the root tag commands operate on.
type Session struct {
	Root *tag.Tag
}

// Result is the outcome of one command. Count is the command's numeric
// result, Values the tags it read and Text a rendering for display.
type Result struct {
	Count  int
	Values []*tag.Tag
	Text   string
}

// New returns a session on root, or on an empty compound when root is nil.
func New(root *tag.Tag) *Session {
	if root == nil {
		root = tag.NewCompound()
	}
	return &Session{Root: root}
}

type command func(s *Session, r *token.Reader) (*Result, error)

var commands map[string]command

func init() {
	commands = map[string]command{
		"get":    (*Session).get,
		"count":  (*Session).count,
		"remove": (*Session).remove,
		"merge":  (*Session).merge,
		"modify": (*Session).modify,
		"uuid":   (*Session).uuid,
		"pos":    (*Session).pos,
		"move":   (*Session).move,
	}
}

// Exec parses and runs one command line. A failed command leaves the root
// unchanged unless the failure happened while writing several targets.
func (s *Session) Exec(line string) (*Result, error) {
	r := token.NewReader(line)
	r.SkipWhitespace()
	at := r.Pos()
	name := r.ReadUnquoted()
	if name == "" {
		return nil, token.ExpectedErr("command", at)
	}
	cmd, ok := commands[name]
	if !ok {
		return nil, token.NewSyntaxErr(fmt.Errorf("%w %q", ErrUnknownCommand, name), at)
	}
	r.SkipWhitespace()
	res, err := cmd(s, r)
	if debug.Session() {
		if err != nil {
			debug.Logf("session %q: %v\n", line, err)
		} else {
			debug.Logf("session %q: count %d values %v\n", line, res.Count, res.Values)
		}
	}
	return res, err
}

// end fails unless only whitespace is left on the line.
func end(r *token.Reader) error {
	r.SkipWhitespace()
	if r.CanRead() {
		return token.NewSyntaxErr(fmt.Errorf("%w %q", ErrTrailing, r.Remaining()), r.Pos())
	}
	return nil
}

func changed(n int) (*Result, error) {
	if n == 0 {
		return nil, ErrUnchanged
	}
	return &Result{Count: n}, nil
}
