package lexer

import "fmt"

// Token is one scanned lexeme. Tokens are read-only once returned.
type Token struct {
	Kind TokenKind
	// Text is the exact source slice, delimiters included for string literals
	Text string
	Pos  Pos

	// Int is set for IntegerLiteral
	Int uint64
	// Str is set for StringLiteral
	Str string
}

func (t *Token) String() string {
	switch t.Kind {
	case EndOfInput:
		return fmt.Sprintf("%v at %v", t.Kind, t.Pos)
	case StringLiteral:
		return fmt.Sprintf("%v(%q) at %v", t.Kind, t.Str, t.Pos)
	case IntegerLiteral:
		return fmt.Sprintf("%v(%d) at %v", t.Kind, t.Int, t.Pos)
	}
	return fmt.Sprintf("%v(%s) at %v", t.Kind, t.Text, t.Pos)
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota

	LAngle    // <
	RAngle    // >
	Equals    // =
	Semicolon // ;
	Comma     // ,
	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )

	KwAs       // as
	KwMap      // MAP
	KwEnum     // enum
	KwVoid     // void
	KwArray    // Array
	KwImport   // import
	KwService  // service
	KwMessage  // message
	KwOptional // optional
	KwRequired // required

	Identifier
	IntegerLiteral
	StringLiteral
	EndOfInput
)

var kindNames = [...]string{
	TokenInvalid:   "Invalid",
	LAngle:         "LAngle",
	RAngle:         "RAngle",
	Equals:         "Equals",
	Semicolon:      "Semicolon",
	Comma:          "Comma",
	LBrace:         "LBrace",
	RBrace:         "RBrace",
	LParen:         "LParen",
	RParen:         "RParen",
	KwAs:           "KwAs",
	KwMap:          "KwMap",
	KwEnum:         "KwEnum",
	KwVoid:         "KwVoid",
	KwArray:        "KwArray",
	KwImport:       "KwImport",
	KwService:      "KwService",
	KwMessage:      "KwMessage",
	KwOptional:     "KwOptional",
	KwRequired:     "KwRequired",
	Identifier:     "Identifier",
	IntegerLiteral: "IntegerLiteral",
	StringLiteral:  "StringLiteral",
	EndOfInput:     "EndOfInput",
}

func (k TokenKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", k)
}

func (k TokenKind) IsKeyword() bool {
	return k >= KwAs && k <= KwRequired
}

func (k TokenKind) IsPunctuation() bool {
	return k >= LAngle && k <= RParen
}

func punctuationKind(c byte) (TokenKind, bool) {
	switch c {
	case '<':
		return LAngle, true
	case '>':
		return RAngle, true
	case '=':
		return Equals, true
	case ';':
		return Semicolon, true
	case ',':
		return Comma, true
	case '{':
		return LBrace, true
	case '}':
		return RBrace, true
	case '(':
		return LParen, true
	case ')':
		return RParen, true
	}
	return TokenInvalid, false
}
