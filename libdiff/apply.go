package libdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/nbtpath/nbtpath"
	"github.com/signadot/nbtpath/tag"
)

var ErrConflict = errors.New("change does not apply")

// Apply performs changes, as returned by Diff, on root in place.
func Apply(root *tag.Tag, changes []Change) error {
	for _, c := range changes {
		if err := apply(root, c); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrConflict, c, err)
		}
	}
	return nil
}

func apply(root *tag.Tag, c Change) error {
	nodes := c.Path.Nodes()
	if len(nodes) == 0 {
		if c.Op != Replace {
			return fmt.Errorf("%s at the root", c.Op)
		}
		*root = *c.To.Clone()
		return nil
	}
	last := nodes[len(nodes)-1]
	switch c.Op {
	case Delete:
		if c.Path.Remove(root) != 1 {
			return nbtpath.ErrNothingFound
		}
		return nil
	case Insert:
		if ie, ok := last.(nbtpath.IndexedElement); ok {
			n, err := nbtpath.New(nodes[:len(nodes)-1]...).Insert(root, ie.Index, []*tag.Tag{c.To})
			if err != nil {
				return err
			}
			if n != 1 {
				return fmt.Errorf("inserted into %d lists", n)
			}
			return nil
		}
	}
	_, err := c.Path.Set(root, c.To)
	return err
}
