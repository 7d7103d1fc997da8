package lexer

import (
	"strings"
	"sync"
)

type Source struct {
	Name    string
	Content []byte

	lines func() []string
}

func NewSource(name string, content []byte) *Source {
	return &Source{
		Name:    name,
		Content: content,
		lines: sync.OnceValue(func() []string {
			return splitLines(string(content))
		}),
	}
}

// Line returns the text of the 1-based line n without its terminator.
func (s *Source) Line(n int) (string, bool) {
	lines := s.lines()
	if n < 1 || n > len(lines) {
		return "", false
	}
	return lines[n-1], true
}

// splitLines splits on the same terminators the buffer counts: \r\n, \n and a bare \r.
func splitLines(content string) (ret []string) {
	for {
		i := strings.IndexAny(content, "\r\n")
		if i < 0 {
			ret = append(ret, content)
			return
		}
		ret = append(ret, content[:i])
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			i++
		}
		content = content[i+1:]
	}
}
