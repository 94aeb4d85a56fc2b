// Package eval compiles expr-lang expressions used to filter the tags an
// NBT path selects, as in
//
//	nbtq get -where 'value.Count > 32' 'Inventory[]'
//
// Besides the names of Env, expressions can call the registered Symbols:
// getenv(name), tovalue(snbt), uuid(value) which renders an int array
// UUID as text, and isuuid(s).
package eval
