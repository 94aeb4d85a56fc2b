package encode

type EncodeOption func(*EncState)

// EncodeIndent prints compounds and lists over several lines, indenting
// each level by n spaces. n == 0 gives the compact single line form.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeSortKeys prints compound fields sorted by key instead of in
// insertion order.
func EncodeSortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}
