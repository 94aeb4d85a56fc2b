// Package codec reads and writes tag trees in the formats of package
// format.
//
// SNBT goes through packages parse and encode. JSON and YAML map
// compounds to objects and collections to arrays; decoding them yields
// Int or Long for integers, Double for other numbers and Byte for
// booleans. Binary NBT, optionally gzip compressed, is lossless apart from
// field order, which is sorted on decoding.
package codec
