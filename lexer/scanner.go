package lexer

import (
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Scanner turns a source buffer into tokens with one token of lookahead.
type Scanner struct {
	buf       *Buffer
	lookahead *Token
	options   Options
}

var _ TokenStream = new(Scanner)

func NewScanner(name string, content []byte, options Options) *Scanner {
	return &Scanner{
		buf:     NewBuffer(NewSource(name, content)),
		options: options,
	}
}

func (s *Scanner) Source() *Source {
	return s.buf.Source()
}

// Pos reports the cursor, which is past the lookahead token if one is cached.
func (s *Scanner) Pos() Pos {
	return s.buf.Pos()
}

// NextToken returns and consumes the next token.
// At the end of input it returns an EndOfInput token on every call.
func (s *Scanner) NextToken() (*Token, error) {
	if s.lookahead != nil {
		token := s.lookahead
		s.lookahead = nil
		return token, nil
	}
	return s.scan()
}

// PeekToken returns the next token without consuming it.
func (s *Scanner) PeekToken() (*Token, error) {
	if s.lookahead == nil {
		token, err := s.scan()
		if err != nil {
			return nil, err
		}
		s.lookahead = token
	}
	return s.lookahead, nil
}

func (s *Scanner) Current() (*Token, error) {
	return s.PeekToken()
}

// Consume drops the token returned by Current.
func (s *Scanner) Consume() {
	s.lookahead = nil
}

// SkipByte discards input after a failed scan so the caller can resume.
// A cached token is dropped; otherwise the character at the cursor is skipped.
func (s *Scanner) SkipByte() {
	if s.lookahead != nil {
		s.lookahead = nil
		return
	}
	s.buf.SkipWhitespaceAndComments()
	_, size := utf8.DecodeRune(s.buf.source.Content[s.buf.pos.Offset:])
	s.buf.Advance(max(size, 1))
}

// All yields tokens up to, not including, EndOfInput.
// Iteration stops after the first error.
func (s *Scanner) All() iter.Seq2[*Token, error] {
	return func(yield func(*Token, error) bool) {
		for {
			token, err := s.NextToken()
			if err != nil {
				yield(nil, err)
				return
			}
			if token.Kind == EndOfInput {
				return
			}
			if !yield(token, nil) {
				return
			}
		}
	}
}

func (s *Scanner) scan() (*Token, error) {
	s.buf.SkipWhitespaceAndComments()
	start := s.buf.Pos()

	c, ok := s.buf.PeekByte(0)
	if !ok {
		return &Token{
			Kind: EndOfInput,
			Pos:  start,
		}, nil
	}

	if kind, ok := punctuationKind(c); ok {
		token := &Token{
			Kind: kind,
			Text: s.buf.text(1),
			Pos:  start,
		}
		s.buf.Advance(1)
		return token, nil
	}

	switch {
	case c == '"' || c == '`':
		return s.scanString(start, c)
	case isLetter(c):
		return s.scanIdentifier(start)
	case isDigit(c):
		return s.scanInteger(start)
	}

	r, _ := utf8.DecodeRune(s.buf.source.Content[start.Offset:])
	return nil, s.errorAt(start, &UnexpectedCharacterError{
		Byte: c,
		Rune: r,
	})
}

func (s *Scanner) scanIdentifier(start Pos) (*Token, error) {
	n := 1
	for {
		c, ok := s.buf.PeekByte(n)
		if !ok {
			break
		}
		if !isLetter(c) && (s.options.StrictIdentifiers || !isDigit(c)) {
			break
		}
		n++
	}

	text := s.buf.text(n)
	s.buf.Advance(n)

	kind := Identifier
	if kw, ok := LookupKeyword(text); ok {
		kind = kw
	}
	return &Token{
		Kind: kind,
		Text: text,
		Pos:  start,
	}, nil
}

func (s *Scanner) scanInteger(start Pos) (*Token, error) {
	n := 1
	for {
		c, ok := s.buf.PeekByte(n)
		if !ok || !isDigit(c) {
			break
		}
		n++
	}

	text := s.buf.text(n)
	value, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		// a run of ASCII digits can only fail by range
		return nil, s.errorAt(start, &IntegerOverflowError{
			Text: text,
		})
	}
	s.buf.Advance(n)

	return &Token{
		Kind: IntegerLiteral,
		Text: text,
		Pos:  start,
		Int:  value,
	}, nil
}

func (s *Scanner) scanString(start Pos, quote byte) (*Token, error) {
	s.buf.Advance(1)
	content := s.buf.source.Content
	escapes := s.options.StringEscapes && quote == '"'

	var sb strings.Builder
	segment := s.buf.Pos().Offset
	for {
		c, ok := s.buf.PeekByte(0)
		if !ok {
			s.buf.rewind(start)
			return nil, s.errorAt(start, ErrUnterminatedString)
		}

		if c == quote {
			end := s.buf.Pos().Offset
			var value string
			if escapes {
				sb.Write(content[segment:end])
				value = sb.String()
			} else {
				value = string(content[start.Offset+1 : end])
			}
			s.buf.Advance(1)
			return &Token{
				Kind: StringLiteral,
				Text: s.buf.slice(start.Offset, end+1),
				Pos:  start,
				Str:  value,
			}, nil
		}

		if s.buf.skipLineTerminator() {
			continue
		}

		if escapes && c == '\\' {
			next, ok := s.buf.PeekByte(1)
			if !ok {
				s.buf.rewind(start)
				return nil, s.errorAt(start, ErrUnterminatedString)
			}
			if decoded, ok := unescape(next); ok {
				sb.Write(content[segment:s.buf.Pos().Offset])
				sb.WriteByte(decoded)
				s.buf.Advance(2)
				segment = s.buf.Pos().Offset
				continue
			}
			// unknown escapes are kept verbatim
		}

		s.buf.Advance(1)
	}
}

func unescape(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case '\\', '"', '\'', '`':
		return c, true
	}
	return 0, false
}

func (s *Scanner) errorAt(pos Pos, err error) error {
	return PosError{
		Err:    err,
		Pos:    pos,
		Source: s.buf.source,
	}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
