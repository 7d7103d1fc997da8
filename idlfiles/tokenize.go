package idlfiles

import (
	"context"

	"github.com/gufeijun/myrpcc/lexer"
	"github.com/gufeijun/myrpcc/logs"
)

// File is the result of scanning one schema file.
// Tokens holds everything scanned before an error, if any.
type File struct {
	Path   string
	Source *lexer.Source
	Tokens []*lexer.Token
	End    lexer.Pos
}

type Tokenize func(ctx context.Context, path string) (*File, error)

func (Module) Tokenize(
	logger logs.Logger,
	newSpan logs.NewSpan,
	openScanner OpenScanner,
) Tokenize {
	return func(ctx context.Context, path string) (*File, error) {
		ctx, _ = newSpan(ctx, "")

		scanner, err := openScanner(ctx, path)
		if err != nil {
			return nil, err
		}

		file := &File{
			Path:   path,
			Source: scanner.Source(),
		}
		file.Tokens, file.End, err = lexer.Collect(scanner)
		if err != nil {
			logger.WarnContext(ctx, "scan schema",
				"path", path,
				"tokens", len(file.Tokens),
				"error", err,
			)
			return file, logs.WrapSpan(ctx, err)
		}

		logger.InfoContext(ctx, "scan schema",
			"path", path,
			"tokens", len(file.Tokens),
			"lines", file.End.Line,
		)
		return file, nil
	}
}
