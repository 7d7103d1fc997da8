package lexer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrIntegerOverflow     = errors.New("integer literal overflows uint64")
	ErrSourceTooLarge      = errors.New("source too large")
	ErrNotText             = errors.New("source is not text")
)

// PosError is a scanning failure at a source position.
type PosError struct {
	Err    error
	Pos    Pos
	Source *Source
}

func (p PosError) Error() string {
	if p.Source == nil {
		return fmt.Sprintf("%s at %v", p.Err.Error(), p.Pos)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%v\n", p.Err.Error(), p.Source.Name, p.Pos)

	line, ok := p.Source.Line(p.Pos.Line)
	if !ok {
		return sb.String()
	}
	sb.WriteString(line)
	sb.WriteString("\n")

	// caret; Column counts bytes, padding counts display cells
	for i, r := range line {
		if i >= p.Pos.Column {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", runeWidth(r)))
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

func (p PosError) Unwrap() error {
	return p.Err
}

// wide ranges of East Asian scripts take two cells
var wideRanges = [][2]rune{
	{0x1100, 0x115f},
	{0x2329, 0x232a},
	{0x2e80, 0x303e},
	{0x3040, 0xa4cf},
	{0xac00, 0xd7a3},
	{0xf900, 0xfaff},
	{0xfe10, 0xfe19},
	{0xfe30, 0xfe6f},
	{0xff00, 0xff60},
	{0xffe0, 0xffe6},
}

func runeWidth(r rune) int {
	for _, rng := range wideRanges {
		if r >= rng[0] && r <= rng[1] {
			return 2
		}
	}
	return 1
}

type UnexpectedCharacterError struct {
	Byte byte
	// Rune is utf8.RuneError when Byte does not start a valid UTF-8 sequence
	Rune rune
}

func (u *UnexpectedCharacterError) Error() string {
	if u.Rune == utf8.RuneError || u.Rune < 0x20 {
		return fmt.Sprintf("unexpected character 0x%02x", u.Byte)
	}
	return fmt.Sprintf("unexpected character %q", u.Rune)
}

func (u *UnexpectedCharacterError) Is(target error) bool {
	return target == ErrUnexpectedCharacter
}

type IntegerOverflowError struct {
	Text string
}

func (i *IntegerOverflowError) Error() string {
	return fmt.Sprintf("integer literal %s overflows uint64", i.Text)
}

func (i *IntegerOverflowError) Is(target error) bool {
	return target == ErrIntegerOverflow
}

// NotTextError reports content that cannot be scanned as text.
type NotTextError struct {
	// MIME is the detected content type
	MIME string
}

func (n *NotTextError) Error() string {
	return fmt.Sprintf("source is not text (%s)", n.MIME)
}

func (n *NotTextError) Is(target error) bool {
	return target == ErrNotText
}

// IOError is a failure to build a scanner from a file.
type IOError struct {
	Path string
	Err  error
}

func (i *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", i.Path, i.Err)
}

func (i *IOError) Unwrap() error {
	return i.Err
}
