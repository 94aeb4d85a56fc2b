package codec

import "github.com/signadot/nbtpath/encode"

type codecOpts struct {
	snbt []encode.EncodeOption
	gzip bool
}

type EncodeOption func(*codecOpts)

// SNBTOptions passes opts to the SNBT encoder.
func SNBTOptions(opts ...encode.EncodeOption) EncodeOption {
	return func(o *codecOpts) { o.snbt = append(o.snbt, opts...) }
}

// Gzip compresses binary NBT output, as Java Edition does for most files.
func Gzip(v bool) EncodeOption {
	return func(o *codecOpts) { o.gzip = v }
}
