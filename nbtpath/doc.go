// Package nbtpath parses NBT paths and applies them to tag trees.
//
// A path is a sequence of nodes, each selecting children of what the
// previous node selected, starting from the root tag:
//
//	Inventory[{Slot:0b}].tag.display.Name
//
// The nodes are
//
//	name, "quoted name"     CompoundChild: a field of a compound
//	name{...}               MatchObject: a field matching a filter
//	{...}                   MatchRootObject: the root if it matches (first node only)
//	[]                      AllElements: every element of a list or array
//	[i]                     IndexedElement: one element, negative from the end
//	[{...}]                 MatchElement: the list elements matching a filter
//
// Nodes are separated by '.', which may be left out before '[' and '{'.
// A space ends a path. Filters are SNBT compounds and match partially:
// the candidate must have every field of the filter, nested compounds
// matching the same way, and may have others.
//
// Get and CountMatching read a tree. Set, Remove and Insert modify it in
// place and report how many positions changed. Set and Insert create
// missing containers along the path, Remove never does.
package nbtpath
