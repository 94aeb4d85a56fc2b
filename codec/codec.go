package codec

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/sandertv/gophertunnel/minecraft/nbt"

	"github.com/signadot/nbtpath/debug"
	"github.com/signadot/nbtpath/encode"
	"github.com/signadot/nbtpath/format"
	"github.com/signadot/nbtpath/parse"
	"github.com/signadot/nbtpath/tag"
)

var ErrNotCompound = errors.New("binary NBT root must be a compound")

var gzipMagic = []byte{0x1f, 0x8b}

func encoding(f format.Format) nbt.Encoding {
	switch f {
	case format.NBTLEFormat:
		return nbt.LittleEndian
	case format.NBTNetFormat:
		return nbt.NetworkLittleEndian
	}
	return nbt.BigEndian
}

// Decode reads one document in format f. Gzip compressed binary NBT is
// detected and decompressed.
func Decode(r io.Reader, f format.Format) (*tag.Tag, error) {
	switch f {
	case format.SNBTFormat:
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return parse.Parse(string(d))
	case format.JSONFormat:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("json: %w", err)
		}
		return tag.FromAny(v)
	case format.YAMLFormat:
		d, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("yaml: %w", err)
		}
		return tag.FromAny(narrow(v))
	case format.NBTFormat, format.NBTLEFormat, format.NBTNetFormat:
		return decodeBinary(r, f)
	}
	return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}

func decodeBinary(r io.Reader, f format.Format) (*tag.Tag, error) {
	br := bufio.NewReader(r)
	if magic, _ := br.Peek(2); bytes.Equal(magic, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	} else {
		r = br
	}
	var v map[string]any
	if err := nbt.NewDecoderWithEncoding(r, encoding(f)).Decode(&v); err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}
	if debug.Parse() {
		debug.Logf("decoded %s root with %d fields\n", f, len(v))
	}
	return tag.FromAny(v)
}

// narrow turns the int64 and uint64 values of the YAML decoder into int,
// so that small numbers become Int tags rather than Long.
func narrow(v any) any {
	switch x := v.(type) {
	case uint64:
		if x <= math.MaxInt32 {
			return int(x)
		}
		return int64(x)
	case int64:
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return int(x)
		}
	case []any:
		for i := range x {
			x[i] = narrow(x[i])
		}
	case map[string]any:
		for k := range x {
			x[k] = narrow(x[k])
		}
	}
	return v
}

// Encode writes t to w in format f.
func Encode(w io.Writer, t *tag.Tag, f format.Format, opts ...EncodeOption) error {
	o := &codecOpts{}
	for _, opt := range opts {
		opt(o)
	}
	switch f {
	case format.SNBTFormat:
		return encode.Encode(t, w, o.snbt...)
	case format.JSONFormat:
		d, err := json.Marshal(tag.ToAny(t))
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	case format.YAMLFormat:
		d, err := yaml.Marshal(tag.ToAny(t))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case format.NBTFormat, format.NBTLEFormat, format.NBTNetFormat:
		return encodeBinary(w, t, f, o)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}

func encodeBinary(w io.Writer, t *tag.Tag, f format.Format, o *codecOpts) error {
	if !t.IsCompound() {
		return ErrNotCompound
	}
	if !o.gzip {
		return nbt.NewEncoderWithEncoding(w, encoding(f)).Encode(tag.ToNative(t))
	}
	zw := gzip.NewWriter(w)
	if err := nbt.NewEncoderWithEncoding(zw, encoding(f)).Encode(tag.ToNative(t)); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
