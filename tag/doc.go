// Package tag provides the NBT tree model.
//
// A [Tag] is one of the twelve NBT value types. Compounds are string keyed
// maps that keep insertion order, lists hold elements of any type, and
// the typed arrays (byte, int and long) hold numbers converted to their
// element type.
//
// # Building trees
//
//	root := tag.FromKeyVals(
//		tag.KeyVal{Key: "id", Val: tag.String("minecraft:pig")},
//		tag.KeyVal{Key: "Pos", Val: tag.Vec3(mgl64.Vec3{1, 64, 1})},
//	)
//
// # Value semantics
//
// Trees are mutable and shared by pointer. [Tag.Clone] makes an
// independent deep copy, [Equal] compares structurally and [Matches]
// implements the partial compound match used by path filters.
//
// # Conversions
//
// [FromAny], [ToAny] and [ToNative] convert between tags and decoded
// documents. [UUID] and [Vec3] encode the common int-array uuid and
// double-list vector layouts.
package tag
