// Package session runs data commands against a root tag.
//
// A command is one line. Paths and SNBT values share the line's reader,
// so a value may follow a path directly:
//
//	get <path> [<scale>]
//	count <path>
//	remove <path>
//	merge <compound>
//	modify <path> set|merge (value <snbt> | from <path>)
//	modify <path> append|prepend (value <snbt>... | from <path>)
//	modify <path> insert <index> (value <snbt>... | from <path>)
//	uuid <path> [<uuid>]
//	pos <path> <x> <y> <z>
//	move <path> <dx> <dy> <dz>
//
// get needs the path to select exactly one tag. Its count is the tag's
// value when numeric, scaled and floored when a scale is given, and its
// size otherwise. Commands that modify the root fail with ErrUnchanged
// when they change nothing.
package session
