package lexer

import "iter"

type keyword struct {
	text string
	kind TokenKind
}

var keywords = [...]keyword{
	{"message", KwMessage},
	{"service", KwService},
	{"enum", KwEnum},
	{"import", KwImport},
	{"optional", KwOptional},
	{"required", KwRequired},
	{"as", KwAs},
	{"MAP", KwMap},
	{"Array", KwArray},
	{"void", KwVoid},
}

var keywordKinds = func() map[string]TokenKind {
	ret := make(map[string]TokenKind, len(keywords))
	for _, kw := range keywords {
		ret[kw.text] = kw.kind
	}
	return ret
}()

// LookupKeyword matches text case-sensitively against the reserved words.
func LookupKeyword(text string) (TokenKind, bool) {
	kind, ok := keywordKinds[text]
	return kind, ok
}

// Keywords iterates the reserved words in declaration order.
func Keywords() iter.Seq2[string, TokenKind] {
	return func(yield func(string, TokenKind) bool) {
		for _, kw := range keywords {
			if !yield(kw.text, kw.kind) {
				return
			}
		}
	}
}
