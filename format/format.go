package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	SNBTFormat Format = iota
	JSONFormat
	YAMLFormat
	// NBTFormat is big endian binary NBT as written by Java Edition.
	NBTFormat
	// NBTLEFormat is little endian binary NBT as stored by Bedrock Edition.
	NBTLEFormat
	// NBTNetFormat is the varint encoded little endian NBT of the Bedrock
	// network protocol.
	NBTNetFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"s":      SNBTFormat,
		"snbt":   SNBTFormat,
		"j":      JSONFormat,
		"json":   JSONFormat,
		"y":      YAMLFormat,
		"yaml":   YAMLFormat,
		"nbt":    NBTFormat,
		"nbtle":  NBTLEFormat,
		"nbtnet": NBTNetFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case SNBTFormat:
		return []byte("snbt"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case NBTFormat:
		return []byte("nbt"), nil
	case NBTLEFormat:
		return []byte("nbtle"), nil
	case NBTNetFormat:
		return []byte("nbtnet"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsText() bool { return f <= YAMLFormat }

func (f Format) IsBinary() bool { return f >= NBTFormat && f <= NBTNetFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case SNBTFormat:
		return ".snbt"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	case NBTFormat, NBTLEFormat, NBTNetFormat:
		return ".nbt"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{SNBTFormat, JSONFormat, YAMLFormat, NBTFormat, NBTLEFormat, NBTNetFormat}
}

// FromPath guesses the format of a file from its extension. Java .dat
// files are big endian and Bedrock .mcstructure files little endian.
func FromPath(p string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".snbt":
		return SNBTFormat, true
	case ".json":
		return JSONFormat, true
	case ".yaml", ".yml":
		return YAMLFormat, true
	case ".nbt", ".dat", ".schematic":
		return NBTFormat, true
	case ".mcstructure":
		return NBTLEFormat, true
	}
	return SNBTFormat, false
}
