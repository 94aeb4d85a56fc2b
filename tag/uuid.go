package tag

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var ErrNotUUID = errors.New("not a uuid")

// UUID encodes u the way entity ids are stored: an int array of four big
// endian words, most significant first.
func UUID(u uuid.UUID) *Tag {
	return IntArray(
		int32(binary.BigEndian.Uint32(u[0:4])),
		int32(binary.BigEndian.Uint32(u[4:8])),
		int32(binary.BigEndian.Uint32(u[8:12])),
		int32(binary.BigEndian.Uint32(u[12:16])),
	)
}

// AsUUID decodes a four element int array, or a string holding a uuid in
// canonical form.
func (t *Tag) AsUUID() (uuid.UUID, error) {
	var u uuid.UUID
	if t == nil {
		return u, ErrNotUUID
	}
	switch t.Type {
	case StringType:
		p, err := uuid.Parse(t.String)
		if err != nil {
			return u, fmt.Errorf("%w: %w", ErrNotUUID, err)
		}
		return p, nil
	case IntArrayType:
		if len(t.Values) != 4 {
			return u, fmt.Errorf("%w: int array of length %d", ErrNotUUID, len(t.Values))
		}
		for i, v := range t.Values {
			binary.BigEndian.PutUint32(u[i*4:], uint32(int32(v.Int)))
		}
		return u, nil
	}
	return u, fmt.Errorf("%w: %s", ErrNotUUID, t.Type)
}
