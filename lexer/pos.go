package lexer

import "fmt"

// Pos is a location in a source buffer.
// Line starts at 1, Column starts at 0 and counts bytes since the last line terminator.
type Pos struct {
	Line   int
	Column int
	Offset int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column+1)
}
