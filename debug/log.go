package debug

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/tag"
)

type SNBT struct{ *tag.Tag }

func (y SNBT) String() string {
	x := y.Tag
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf); err != nil {
		return fmt.Sprintf("[raw *tag.Tag] %v", x)
	}
	return strings.TrimSpace(buf.String())
}

// Logf writes to stderr, rendering *tag.Tag and []*tag.Tag arguments as
// SNBT.
func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *tag.Tag:
			args[i] = SNBT{x}.String()
		case []*tag.Tag:
			buf := bytes.NewBuffer(nil)
			buf.WriteByte('[')
			for j, t := range x {
				if j != 0 {
					buf.WriteString(", ")
				}
				buf.WriteString(SNBT{t}.String())
			}
			buf.WriteByte(']')
			args[i] = buf.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
