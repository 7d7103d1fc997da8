package lexer

import (
	"os"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// Open reads the whole file at path and returns a scanner over it.
func Open(path string, options Options) (*Scanner, error) {
	if options.MaxSourceSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &IOError{Path: path, Err: wrap(err)}
		}
		if info.Size() > options.MaxSourceSize {
			return nil, &IOError{Path: path, Err: ErrSourceTooLarge}
		}
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: wrap(err)}
	}
	if err := checkText(content); err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	return NewScanner(path, content, options), nil
}

// checkText rejects invalid UTF-8 and binary control bytes.
// The detected MIME type only names the format in the error.
func checkText(content []byte) error {
	if utf8.Valid(content) && !hasBinaryBytes(content) {
		return nil
	}
	return &NotTextError{
		MIME: mimetype.Detect(content).String(),
	}
}

func hasBinaryBytes(content []byte) bool {
	for _, c := range content {
		switch {
		case c == '\t', c == '\n', c == '\v', c == '\f', c == '\r':
		case c < 0x20, c == 0x7f:
			return true
		}
	}
	return false
}
