// Package format names the document formats tags are read from and
// written to.
//
// SNBT is the native text form. JSON and YAML carry the same trees but
// lose number widths. The three binary formats are the NBT encodings of
// Java Edition, Bedrock Edition storage and the Bedrock network protocol.
//
// # Related Packages
//
//   - github.com/signadot/nbtpath/codec - Read and write tags in a Format
package format
