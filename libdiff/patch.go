package libdiff

import (
	"bytes"
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/nbtpath/tag"
)

// MergePatch returns the JSON merge patch (RFC 7386) turning the JSON form
// of from into that of to.
func MergePatch(from, to *tag.Tag) ([]byte, error) {
	fd, err := json.Marshal(tag.ToAny(from))
	if err != nil {
		return nil, err
	}
	td, err := json.Marshal(tag.ToAny(to))
	if err != nil {
		return nil, err
	}
	return jsonpatch.CreateMergePatch(fd, td)
}

// ApplyJSONPatch applies a JSON patch (RFC 6902) to the JSON form of t.
// The result has JSON number widths: Int or Long and Double.
func ApplyJSONPatch(t *tag.Tag, patch []byte) (*tag.Tag, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := json.Marshal(tag.ToAny(t))
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return tag.FromAny(v)
}
