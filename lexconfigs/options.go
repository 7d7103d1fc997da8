package lexconfigs

import (
	"github.com/gufeijun/myrpcc/configs"
	"github.com/gufeijun/myrpcc/lexer"
	"github.com/gufeijun/myrpcc/logs"
	"github.com/gufeijun/myrpcc/vars"
)

type LoadOptions func() (lexer.Options, error)

// LoadOptions merges flags over config files over defaults.
func (Module) LoadOptions(
	loader configs.Loader,
	logger logs.Logger,
) LoadOptions {
	return func() (options lexer.Options, err error) {
		paths, err := loader.Paths()
		if err != nil {
			return
		}

		identifierDigits, err := configs.First[*bool](loader, "identifier_digits")
		if err != nil {
			return
		}
		options.StrictIdentifiers = identifierDigits != nil && !*identifierDigits
		if *strictIdentifiersFlag {
			options.StrictIdentifiers = true
		}

		stringEscapes, err := configs.First[*bool](loader, "string_escapes")
		if err != nil {
			return
		}
		options.StringEscapes = *stringEscapesFlag || vars.DerefOrZero(stringEscapes)

		maxSourceSize, err := configs.First[int64](loader, "max_source_size")
		if err != nil {
			return
		}
		options.MaxSourceSize = vars.FirstNonZero(
			*maxSourceSizeFlag,
			maxSourceSize,
		)

		logger.Debug("lexer options",
			"configs", paths,
			"strict_identifiers", options.StrictIdentifiers,
			"string_escapes", options.StringEscapes,
			"max_source_size", options.MaxSourceSize,
		)
		return
	}
}
