package eval

import (
	"os"
	"strings"

	"github.com/signadot/nbtpath/debug"
)

var osenvSym = &funcSymbol{
	name:     osenvName,
	synopsis: "getenv(name) string: the environment variable name",
	fn:       osenv,
	types:    []any{new(func(string) string)},
}

func OSEnv() Symbol {
	return osenvSym
}

const (
	osenvName name = "getenv"
)

func osenv(params ...any) (any, error) {
	k := strings.TrimSpace(params[0].(string))
	if debug.Path() {
		debug.Logf("getenv %q\n", k)
	}
	return os.Getenv(k), nil
}
