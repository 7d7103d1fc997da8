package idlfiles

import (
	"context"
	"fmt"

	"github.com/gufeijun/myrpcc/lexconfigs"
	"github.com/gufeijun/myrpcc/lexer"
	"github.com/gufeijun/myrpcc/logs"
)

type OpenScanner func(ctx context.Context, path string) (*lexer.Scanner, error)

func (Module) OpenScanner(
	logger logs.Logger,
	loadOptions lexconfigs.LoadOptions,
) OpenScanner {
	return func(ctx context.Context, path string) (*lexer.Scanner, error) {
		options, err := loadOptions()
		if err != nil {
			return nil, logs.WrapSpan(ctx, fmt.Errorf("load config: %w", err))
		}

		scanner, err := lexer.Open(path, options)
		if err != nil {
			logger.WarnContext(ctx, "open schema",
				"path", path,
				"error", err,
			)
			return nil, logs.WrapSpan(ctx, err)
		}

		logger.DebugContext(ctx, "open schema",
			"path", path,
			"size", len(scanner.Source().Content),
		)
		return scanner, nil
	}
}
