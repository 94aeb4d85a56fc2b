package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Path    bool
	Session bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("NBTPATH_DEBUG_PARSE")
	d.Path = boolEnv("NBTPATH_DEBUG_PATH")
	d.Session = boolEnv("NBTPATH_DEBUG_SESSION")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Path() bool {
	return d.Path
}
func Session() bool {
	return d.Session
}
