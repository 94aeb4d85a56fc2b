// Package libdiff computes differences between tag trees.
//
// # Usage
//
//	// Compute the changes between two trees
//	changes := libdiff.Diff(before, after)
//
//	// Replay them
//	err := libdiff.Apply(tree, changes)
//
// Each Change names its position with an NBT path, so a change prints as
// a line like
//
//	~ Inventory[0].Count 1b -> 64b
//
// Text diffs rendered documents line by line and MergePatch produces a
// JSON merge patch of the JSON forms.
package libdiff
