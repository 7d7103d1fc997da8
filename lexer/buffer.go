package lexer

// Buffer holds the source bytes and the cursor.
// Line terminators are only consumed by SkipWhitespaceAndComments and skipLineTerminator,
// never by Advance.
type Buffer struct {
	source *Source
	pos    Pos
}

func NewBuffer(source *Source) *Buffer {
	return &Buffer{
		source: source,
		pos: Pos{
			Line: 1,
		},
	}
}

func (b *Buffer) Source() *Source {
	return b.source
}

func (b *Buffer) Pos() Pos {
	return b.pos
}

// PeekByte returns the byte n bytes after the cursor.
func (b *Buffer) PeekByte(n int) (byte, bool) {
	i := b.pos.Offset + n
	if n < 0 || i >= len(b.source.Content) {
		return 0, false
	}
	return b.source.Content[i], true
}

// Advance moves the cursor n bytes forward on the current line.
func (b *Buffer) Advance(n int) {
	if n <= 0 {
		return
	}
	n = min(n, len(b.source.Content)-b.pos.Offset)
	b.pos.Offset += n
	b.pos.Column += n
}

func (b *Buffer) SkipWhitespaceAndComments() {
	for {
		c, ok := b.PeekByte(0)
		if !ok {
			return
		}
		switch c {
		case ' ', '\t':
			b.Advance(1)
		case '\r', '\n':
			b.skipLineTerminator()
		case '/':
			if next, ok := b.PeekByte(1); !ok || next != '/' {
				return
			}
			n := 2
			for {
				c, ok := b.PeekByte(n)
				if !ok || c == '\n' || c == '\r' {
					break
				}
				n++
			}
			b.Advance(n)
		default:
			return
		}
	}
}

// skipLineTerminator consumes one \n, \r\n or \r at the cursor.
func (b *Buffer) skipLineTerminator() bool {
	c, ok := b.PeekByte(0)
	if !ok {
		return false
	}
	n := 0
	switch c {
	case '\n':
		n = 1
	case '\r':
		n = 1
		if next, ok := b.PeekByte(1); ok && next == '\n' {
			n = 2
		}
	default:
		return false
	}
	b.pos.Offset += n
	b.pos.Line++
	b.pos.Column = 0
	return true
}

// text returns the n bytes at the cursor without consuming them.
func (b *Buffer) text(n int) string {
	end := min(b.pos.Offset+n, len(b.source.Content))
	return string(b.source.Content[b.pos.Offset:end])
}

func (b *Buffer) slice(from, to int) string {
	return string(b.source.Content[from:to])
}

// rewind restores a position previously returned by Pos.
func (b *Buffer) rewind(pos Pos) {
	b.pos = pos
}
