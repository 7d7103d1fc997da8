package lexer

// TokenStream is what a parser pulls tokens from.
// Current returns the next token without consuming it, Consume drops it.
type TokenStream interface {
	Current() (*Token, error)
	Consume()
}

// SliceTokenStream replays collected tokens.
type SliceTokenStream struct {
	tokens []*Token
	idx    int
	eof    *Token
}

var _ TokenStream = new(SliceTokenStream)

func NewSliceTokenStream(tokens []*Token, end Pos) *SliceTokenStream {
	return &SliceTokenStream{
		tokens: tokens,
		eof: &Token{
			Kind: EndOfInput,
			Pos:  end,
		},
	}
}

func (s *SliceTokenStream) Current() (*Token, error) {
	if s.idx >= len(s.tokens) {
		return s.eof, nil
	}
	return s.tokens[s.idx], nil
}

func (s *SliceTokenStream) Consume() {
	if s.idx < len(s.tokens) {
		s.idx++
	}
}

// Collect drains a stream up to EndOfInput.
// The returned position is where EndOfInput was found.
func Collect(stream TokenStream) (tokens []*Token, end Pos, err error) {
	for {
		token, err := stream.Current()
		if err != nil {
			return tokens, end, err
		}
		if token.Kind == EndOfInput {
			return tokens, token.Pos, nil
		}
		tokens = append(tokens, token)
		stream.Consume()
	}
}
