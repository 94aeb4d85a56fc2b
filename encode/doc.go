// Package encode writes tags as SNBT, the stringified NBT literal syntax
// read by package parse.
//
// The default output is the compact single line form used in commands:
//
//	{id:"minecraft:pig",Pos:[1d,64d,1d],Tags:["tame"]}
//
// [EncodeIndent] spreads compounds and lists over several lines and
// [EncodeColors] colors the output for terminals.
package encode
