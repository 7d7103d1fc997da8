package lexer

type Options struct {
	// StrictIdentifiers ends identifiers at the first digit, so field1 scans as field and 1
	StrictIdentifiers bool
	// StringEscapes decodes backslash escapes in double-quoted strings
	StringEscapes bool
	// MaxSourceSize limits the file size accepted by Open, 0 for no limit
	MaxSourceSize int64
}
